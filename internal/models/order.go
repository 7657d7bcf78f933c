package models

import "time"

// Order statuses. StatusPending is the initial state; the others are set by
// seller-side updates. No transition graph is enforced on writes.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderItem is a single line of an order. Price is snapshotted at order
// creation; later product price changes do not touch it.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"productId"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

// Order represents a placed order. Items and TotalAmount are fixed at
// creation; only Status is mutable afterwards.
type Order struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	UserID      string      `json:"user_id" bson:"userId"`
	Items       []OrderItem `json:"items" bson:"items"`
	TotalAmount float64     `json:"total_amount" bson:"totalAmount"`
	Status      string      `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updatedAt"`
}

// ResolvedOrderItem pairs a line item with its product record. Product is
// nil when the referenced product no longer exists.
type ResolvedOrderItem struct {
	OrderItem
	Product *Product `json:"product"`
}

// ResolvedOrder is an order with its buyer and line-item products attached
// for presentation to the caller.
type ResolvedOrder struct {
	Order
	Buyer *UserSummary        `json:"buyer"`
	Items []ResolvedOrderItem `json:"items"`
}
