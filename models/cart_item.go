package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a product reference with a quantity. TotalPrice is derived as
// product price times quantity and recomputed whenever the quantity changes.
type CartItem struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Product    primitive.ObjectID `json:"product" bson:"product"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	TotalPrice float64            `json:"totalPrice" bson:"total_price"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// CartItemDetail is a cart item with its product reference resolved.
type CartItemDetail struct {
	CartItem
	ProductDetail *Product `json:"productDetail,omitempty"`
}

// CreateCartItemRequest is the payload for creating a cart item.
type CreateCartItemRequest struct {
	ProductID string `json:"productId" binding:"required,objectid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest changes a cart item's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
