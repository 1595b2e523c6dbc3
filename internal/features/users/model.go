package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. Password holds the protected form and is never serialized.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	IsAdmin   bool               `bson:"isAdmin" json:"isAdmin"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UpdateUserRequest is a partial update. Nil fields are left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" example:"alice"`
	Email    *string `json:"email,omitempty" example:"alice@example.com"`
	Password *string `json:"password,omitempty" example:"new-secret"`
	IsAdmin  *bool   `json:"isAdmin,omitempty"`
}

// StatsBucket is the number of registrations in one calendar month (1-12).
type StatsBucket struct {
	Month int   `bson:"_id" json:"_id" example:"3"`
	Total int64 `bson:"total" json:"total" example:"42"`
}

// NewestLimit is how many users ?new=true returns.
const NewestLimit = 5
