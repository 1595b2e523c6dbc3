package carts

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LineItem is one product and its quantity. Orders reuse it.
type LineItem struct {
	ProductID string `bson:"productId" json:"productId" example:"65f1c0ffee0000000000abcd"`
	Quantity  int    `bson:"quantity" json:"quantity" example:"1"`
}

// Cart belongs to exactly one user via UserID.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Products  []LineItem         `bson:"products" json:"products"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateCartRequest creates a cart for the caller. Admins may set UserID to act for someone else.
type CreateCartRequest struct {
	UserID   string     `json:"userId,omitempty"`
	Products []LineItem `json:"products"`
}

// UpdateCartRequest replaces the cart's products.
type UpdateCartRequest struct {
	Products []LineItem `json:"products"`
}
