package orders

import (
	"time"

	evbus "github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/opsline/stockpile/internal/domain"
	"github.com/opsline/stockpile/internal/store"
	"github.com/opsline/stockpile/pkg/common"
	"github.com/opsline/stockpile/pkg/metrics"
)

// Event topics published by the workflow engine. Payload is a cloned
// domain.Order in both cases.
const (
	TopicOrderCreated = "order.created"
	TopicOrderStatus  = "order.status"
)

// ProductResolver is the slice of the product registry the engine needs.
type ProductResolver interface {
	GetByID(id string) (domain.Product, error)
}

// SupplierResolver is the slice of the supplier registry the engine needs.
type SupplierResolver interface {
	GetByID(id string) (domain.Supplier, error)
}

// Service is the order workflow engine. It owns referential integrity and
// snapshotting at creation time and the status lifecycle afterwards. It is
// the only writer of the order store.
type Service struct {
	products  ProductResolver
	suppliers SupplierResolver
	orders    store.OrderRepository
	idgen     common.IDGenerator
	bus       evbus.Bus
}

func NewService(
	products ProductResolver,
	suppliers SupplierResolver,
	orders store.OrderRepository,
	idgen common.IDGenerator,
	bus evbus.Bus,
) *Service {
	return &Service{
		products:  products,
		suppliers: suppliers,
		orders:    orders,
		idgen:     idgen,
		bus:       bus,
	}
}

// Create validates the request, resolves the supplier and every product in
// input order, snapshots their names and prices, and appends the finished
// order. On any failure nothing is persisted.
func (s *Service) Create(input domain.OrderInput) (domain.Order, error) {
	if err := input.Validate(); err != nil {
		return domain.Order{}, err
	}

	supplier, err := s.suppliers.GetByID(input.SupplierID)
	if err != nil {
		return domain.Order{}, domain.NewNotFoundError("supplier", input.SupplierID)
	}

	// Resolve in input order so the reported missing id is reproducible
	// for a given malformed request.
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		product, err := s.products.GetByID(in.ProductID)
		if err != nil {
			return domain.Order{}, domain.NewNotFoundError("product", in.ProductID)
		}
		item := domain.OrderItem{
			ProductID:   in.ProductID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
		}
		if product.Price != nil {
			v := *product.Price
			item.UnitPrice = &v
		}
		items = append(items, item)
	}

	order := domain.Order{
		ID:           s.idgen.NextID(),
		SupplierID:   input.SupplierID,
		SupplierName: supplier.Name,
		Status:       domain.OrderStatusPending,
		CreatedAt:    time.Now(),
		Items:        items,
	}
	s.orders.Append(order)

	zap.L().Info("order created",
		zap.String("order_id", order.ID),
		zap.String("supplier_id", order.SupplierID),
		zap.Int("items", len(order.Items)),
	)
	metrics.IncOrderCreated()
	s.bus.Publish(TopicOrderCreated, order.Clone())

	return order.Clone(), nil
}

// UpdateStatus rewrites only the status of an existing order. Unknown ids
// surface domain.ErrNotFound; that is an expected caller case, not a
// workflow failure. No transition table is enforced beyond enum membership.
func (s *Service) UpdateStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, domain.NewValidationError("invalid order status: %s", status)
	}
	order, err := s.orders.UpdateStatus(id, status)
	if err != nil {
		return domain.Order{}, err
	}

	zap.L().Info("order status updated",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.Status)),
	)
	metrics.IncOrderStatusChange(string(status))
	s.bus.Publish(TopicOrderStatus, order.Clone())

	return order, nil
}

// List returns all orders in insertion order.
func (s *Service) List() []domain.Order {
	return s.orders.List()
}

// GetByID returns one order or domain.ErrNotFound.
func (s *Service) GetByID(id string) (domain.Order, error) {
	return s.orders.GetByID(id)
}
