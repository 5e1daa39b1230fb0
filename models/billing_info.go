package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillingInformation is a user's billing address, one per user by convention.
type BillingInformation struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"user_id"`
	Address    string             `json:"address" bson:"address"`
	Country    string             `json:"country" bson:"country"`
	ZipCode    string             `json:"zipCode" bson:"zip_code"`
	PostalCode string             `json:"postalCode" bson:"postal_code"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateBillingInfoRequest is the payload for creating billing information.
// All fields are required.
type CreateBillingInfoRequest struct {
	UserID     string `json:"userId" binding:"required,objectid"`
	Address    string `json:"address" binding:"required"`
	Country    string `json:"country" binding:"required"`
	ZipCode    string `json:"zipCode" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
}

// UpdateBillingInfoRequest is a partial billing information update.
type UpdateBillingInfoRequest struct {
	Address    *string `json:"address"`
	Country    *string `json:"country"`
	ZipCode    *string `json:"zipCode"`
	PostalCode *string `json:"postalCode"`
}
