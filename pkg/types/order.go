package types

import "time"

// Payment status values as stored. The store keeps the strings the
// original databases were written with, so they are part of the durable
// format and must not be translated on write.
const (
	PaymentPending = "Pendente"
	PaymentPaid    = "Pago"
)

// Delivery status values as stored.
const (
	DeliveryPending   = "Pendente"
	DeliveryPreparing = "Em Preparo"
	DeliveryOut       = "Saiu para Entrega"
	DeliveryDelivered = "Entregue"
	DeliveryCancelled = "Cancelado"
)

// Placeholder names substituted on read when a referenced row has been
// deleted (the foreign key is nulled, history is preserved).
const (
	DeletedCustomerName = "Deleted Customer"
	DeletedWeekName     = "Deleted Week"
	DeletedItemName     = "Deleted Item"
)

// Order is an order header. CustomerID and WeekID are nil once the
// referenced row is deleted. Total is stored as supplied by the caller,
// who is expected to have summed quantity*unit price over the lines.
type Order struct {
	OrderID        int64
	CustomerID     *int64
	WeekID         *int64
	CreatedAt      time.Time // Assigned by the store at insertion.
	Total          float64
	PaymentMethod  string
	PaymentStatus  string
	DeliveryStatus string
}

// OrderLine is one line of an order. UnitPrice is a snapshot taken at
// order time; later menu price changes never alter it. MenuItemID is nil
// once the item is deleted.
type OrderLine struct {
	OrderLineID int64
	OrderID     int64
	MenuItemID  *int64
	Quantity    int
	UnitPrice   float64
}

// NewOrderLine is a line as supplied to CreateOrder.
type NewOrderLine struct {
	MenuItemID int64
	Quantity   int
	UnitPrice  float64
}

// OrderSummary is a listing row with customer and week names resolved,
// falling back to the deleted placeholders.
type OrderSummary struct {
	OrderID        int64
	CreatedAt      time.Time
	CustomerName   string
	WeekName       string
	Total          float64
	PaymentMethod  string
	PaymentStatus  string
	DeliveryStatus string
}

// OrderLineView is a line with the item name resolved, falling back to
// the deleted placeholder.
type OrderLineView struct {
	Quantity  int
	ItemName  string
	UnitPrice float64
}
