package products

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. Title is unique.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title" example:"Linen shirt"`
	Desc          string             `bson:"desc" json:"desc"`
	Img           string             `bson:"img" json:"img"`
	ImagePublicID string             `bson:"imagePublicId,omitempty" json:"-"`
	Categories    []string           `bson:"categories" json:"categories"`
	Size          []string           `bson:"size" json:"size"`
	Color         []string           `bson:"color" json:"color"`
	Price         float64            `bson:"price" json:"price" example:"39.5"`
	InStock       bool               `bson:"inStock" json:"inStock"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateProductRequest struct {
	Title      string   `json:"title" binding:"required" example:"Linen shirt"`
	Desc       string   `json:"desc" binding:"required"`
	Img        string   `json:"img"`
	Categories []string `json:"categories"`
	Size       []string `json:"size"`
	Color      []string `json:"color"`
	Price      float64  `json:"price" example:"39.5"`
	InStock    *bool    `json:"inStock,omitempty"`
}

// UpdateProductRequest is a partial update. Nil fields are left untouched.
type UpdateProductRequest struct {
	Title      *string   `json:"title,omitempty"`
	Desc       *string   `json:"desc,omitempty"`
	Img        *string   `json:"img,omitempty"`
	Categories *[]string `json:"categories,omitempty"`
	Size       *[]string `json:"size,omitempty"`
	Color      *[]string `json:"color,omitempty"`
	Price      *float64  `json:"price,omitempty"`
	InStock    *bool     `json:"inStock,omitempty"`
}

// NewestLimit is how many products ?new=true returns.
const NewestLimit = 5
