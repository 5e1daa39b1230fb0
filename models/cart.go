package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart holds an ordered list of cart item references per user. SubTotal is
// recomputed after every add or remove.
type Cart struct {
	ID        primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID   `json:"userId" bson:"user_id"`
	CartItem  []primitive.ObjectID `json:"cartItem" bson:"cart_item"`
	SubTotal  float64              `json:"subTotal" bson:"sub_total"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at"`
}

// CartDetail is a cart with its user and item references resolved.
type CartDetail struct {
	Cart
	User  *User            `json:"user,omitempty"`
	Items []CartItemDetail `json:"items"`
}

// AddToCartRequest references an existing cart item to append.
type AddToCartRequest struct {
	CartItemID string `json:"cartItemId" binding:"required,objectid"`
}
