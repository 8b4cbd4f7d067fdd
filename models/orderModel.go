package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Transitions are unconstrained: any status may be
// overwritten with any other known status.
const (
	StatusPending   = "Pending"
	StatusPreparing = "Preparing"
	StatusReady     = "Ready"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

var validOrderStatuses = map[string]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// IsValidOrderStatus reports whether status belongs to the fixed set.
func IsValidOrderStatus(status string) bool {
	return validOrderStatuses[status]
}

// OrderLine references a menu item by id only. The price is captured at
// order time and stays valid even if the menu item is later edited or
// deleted.
type OrderLine struct {
	MenuItem primitive.ObjectID `bson:"menuItem" json:"menuItem"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderNumber  string             `bson:"orderNumber" json:"orderNumber"`
	Items        []OrderLine        `bson:"items" json:"items"`
	TotalAmount  float64            `bson:"totalAmount" json:"totalAmount"`
	Status       string             `bson:"status" json:"status"`
	CustomerName string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	TableNumber  *int               `bson:"tableNumber,omitempty" json:"tableNumber,omitempty"`
	Created_at   time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderLineRequest is one requested line of a new order. Any
// client-supplied price is ignored; the catalog price is stamped
// server-side.
type OrderLineRequest struct {
	MenuItem string  `json:"menuItem" validate:"required"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price,omitempty"`
}

type CreateOrderRequest struct {
	Items        []OrderLineRequest `json:"items" validate:"required,min=1"`
	CustomerName string             `json:"customerName"`
	TableNumber  *int               `json:"tableNumber"`
}
