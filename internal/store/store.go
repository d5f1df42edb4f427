package store

import "github.com/opsline/stockpile/internal/domain"

// ProductRepository is the authoritative product registry. All reads return
// owned copies; mutating a returned value never touches the store.
type ProductRepository interface {
	// List returns every product in insertion order.
	List() []domain.Product

	// GetByID returns the product or domain.ErrNotFound.
	GetByID(id string) (domain.Product, error)

	// Create validates the input, assigns a fresh id and appends the record.
	Create(input domain.ProductInput) (domain.Product, error)

	// Update merges only the provided fields into an existing record.
	// Returns domain.ErrNotFound when the id is absent; nothing changes then.
	Update(id string, patch domain.ProductPatch) (domain.Product, error)

	// Delete removes the record if present and reports whether it did.
	// Deleting an unknown id is not an error.
	Delete(id string) bool
}

// SupplierRepository is the authoritative supplier registry, same contract
// as ProductRepository.
type SupplierRepository interface {
	List() []domain.Supplier
	GetByID(id string) (domain.Supplier, error)
	Create(input domain.SupplierInput) (domain.Supplier, error)
	Update(id string, patch domain.SupplierPatch) (domain.Supplier, error)
	Delete(id string) bool
}

// OrderRepository stores purchase orders. Orders are only ever appended by
// the workflow engine and only their status is ever rewritten; there is no
// delete.
type OrderRepository interface {
	List() []domain.Order
	GetByID(id string) (domain.Order, error)

	// Append stores a fully built order. The engine guarantees the order is
	// complete before it reaches the store, so a partial order is never
	// visible to readers.
	Append(order domain.Order)

	// UpdateStatus rewrites only the status field. Returns
	// domain.ErrNotFound when the id is absent.
	UpdateStatus(id string, status domain.OrderStatus) (domain.Order, error)
}
