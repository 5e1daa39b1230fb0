package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order snapshots references to the user, cart and billing information at
// creation time. Financial fields are persisted as supplied by the caller and
// are not recomputed afterwards.
type Order struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"user_id"`
	CartID      primitive.ObjectID `json:"cartId" bson:"cart_id"`
	BillingID   primitive.ObjectID `json:"billingId" bson:"billing_id"`
	DeliveryFee float64            `json:"deliveryFee" bson:"delivery_fee"`
	VAT         float64            `json:"vat" bson:"vat"`
	Coupon      float64            `json:"coupon,omitempty" bson:"coupon,omitempty"`
	SubTotal    float64            `json:"subTotal" bson:"sub_total"`
	Total       float64            `json:"total" bson:"total"`
	Currency    string             `json:"currency" bson:"currency"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// OrderDetail is an order with its references resolved.
type OrderDetail struct {
	Order
	User    *User               `json:"user,omitempty"`
	Cart    *Cart               `json:"cart,omitempty"`
	Billing *BillingInformation `json:"billing,omitempty"`
}

// CreateOrderRequest is the payload for creating an order. The total is taken
// as supplied; see ComputeOrderTotal for the caller-side arithmetic.
type CreateOrderRequest struct {
	UserID      string  `json:"userId" binding:"required,objectid"`
	CartID      string  `json:"cartId" binding:"required,objectid"`
	BillingID   string  `json:"billingId" binding:"required,objectid"`
	DeliveryFee float64 `json:"deliveryFee" binding:"gte=0"`
	VAT         float64 `json:"vat" binding:"gte=0"`
	Coupon      float64 `json:"coupon" binding:"gte=0"`
	SubTotal    float64 `json:"subTotal" binding:"gte=0"`
	Total       float64 `json:"total"`
	Currency    string  `json:"currency" binding:"required"`
}

// UpdateOrderRequest is a partial order update, passed through to the store.
type UpdateOrderRequest struct {
	DeliveryFee *float64 `json:"deliveryFee" binding:"omitempty,gte=0"`
	VAT         *float64 `json:"vat" binding:"omitempty,gte=0"`
	Coupon      *float64 `json:"coupon" binding:"omitempty,gte=0"`
	SubTotal    *float64 `json:"subTotal" binding:"omitempty,gte=0"`
	Total       *float64 `json:"total"`
	Currency    *string  `json:"currency"`
}

// OrderCreatedEvent is published to SNS when an order is persisted.
type OrderCreatedEvent struct {
	EventType string    `json:"event_type"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Total     float64   `json:"total"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}
