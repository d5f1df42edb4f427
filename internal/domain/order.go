package domain

import "time"

// OrderStatus is the purchase-order lifecycle state. The engine enforces
// membership only; any status may be set from any other.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusReceived   OrderStatus = "Received"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses lists the valid lifecycle states.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusReceived,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusReceived, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is an order line. ProductName and UnitPrice are snapshots taken
// from the product at order-creation time; they never track later catalog
// changes. UnitPrice is nil when the product carried no price.
type OrderItem struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName,omitempty"`
	Quantity    int      `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
}

func (i OrderItem) clone() OrderItem {
	c := i
	if i.UnitPrice != nil {
		v := *i.UnitPrice
		c.UnitPrice = &v
	}
	return c
}

// Order is a purchase order. SupplierName is a creation-time snapshot, same
// contract as the item snapshots. Items is never empty on a stored order.
type Order struct {
	ID           string      `json:"id"`
	SupplierID   string      `json:"supplierId"`
	SupplierName string      `json:"supplierName,omitempty"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	Items        []OrderItem `json:"items"`
}

// Clone returns an owned copy including the items slice.
func (o Order) Clone() Order {
	c := o
	c.Items = make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		c.Items[i] = item.clone()
	}
	return c
}

// OrderItemInput references a product by id; name and price are resolved by
// the workflow engine, never supplied by the caller.
type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type OrderInput struct {
	SupplierID string           `json:"supplierId"`
	Items      []OrderItemInput `json:"items"`
}

func (in OrderInput) Validate() error {
	if len(in.Items) == 0 {
		return NewValidationError("order requires at least one item")
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return NewValidationError("order item quantity must be positive")
		}
	}
	return nil
}
