package orders

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/storefront/internal/features/carts"
)

// Order statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Order is owned by UserID. Reference is a sortable public identifier assigned at creation.
type Order struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Reference string                 `bson:"reference" json:"reference" example:"01HV6Q5K3X4E8Z2B7N9M1C0D5F"`
	UserID    string                 `bson:"userId" json:"userId"`
	Products  []carts.LineItem       `bson:"products" json:"products"`
	Amount    float64                `bson:"amount" json:"amount" example:"59.9"`
	Address   map[string]interface{} `bson:"address" json:"address" swaggertype:"object"`
	Status    string                 `bson:"status" json:"status" example:"pending"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// CreateOrderRequest places an order for the caller. Admins may set UserID.
type CreateOrderRequest struct {
	UserID   string                 `json:"userId,omitempty"`
	Products []carts.LineItem       `json:"products"`
	Amount   float64                `json:"amount" example:"59.9"`
	Address  map[string]interface{} `json:"address" swaggertype:"object"`
}

// UpdateOrderRequest is a partial update. Nil fields are left untouched.
type UpdateOrderRequest struct {
	Products *[]carts.LineItem      `json:"products,omitempty"`
	Amount   *float64               `json:"amount,omitempty"`
	Address  map[string]interface{} `json:"address,omitempty" swaggertype:"object"`
	Status   *string                `json:"status,omitempty" example:"shipped"`
}

// IncomeBucket is the order total for one calendar month (1-12).
type IncomeBucket struct {
	Month int     `bson:"_id" json:"_id" example:"6"`
	Total float64 `bson:"total" json:"total" example:"1234.5"`
}
