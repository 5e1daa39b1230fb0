package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. Category holds references only; slug and sku are
// derived before persisting.
type Product struct {
	ID                primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Title             string               `json:"title" bson:"title"`
	Feature           string               `json:"feature,omitempty" bson:"feature,omitempty"`
	Price             float64              `json:"price" bson:"price"`
	Category          []primitive.ObjectID `json:"category" bson:"category"`
	InStock           bool                 `json:"inStock" bson:"in_stock"`
	Description       string               `json:"description" bson:"description"`
	IsFeatured        bool                 `json:"isFeatured" bson:"is_featured"`
	SKU               int                  `json:"sku" bson:"sku"`
	Quantity          int                  `json:"quantity" bson:"quantity"`
	IsActive          bool                 `json:"isActive" bson:"is_active"`
	Slug              string               `json:"slug" bson:"slug"`
	InTheBox          string               `json:"inTheBox,omitempty" bson:"in_the_box,omitempty"`
	RelatedCategories []string             `json:"relatedCategories,omitempty" bson:"related_categories,omitempty"`
	ProductGallery    []string             `json:"productGallery,omitempty" bson:"product_gallery,omitempty"`
	CreatedAt         time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at" bson:"updated_at"`
}

// ProductDetail is a product with its category references resolved.
type ProductDetail struct {
	Product
	Categories []Category `json:"categories,omitempty"`
}

// CreateProductRequest is the payload for creating a product. Category holds
// hex ObjectIDs; every one must exist.
type CreateProductRequest struct {
	Title             string   `json:"title" binding:"required"`
	Feature           string   `json:"feature"`
	Price             float64  `json:"price" binding:"required,gt=0"`
	Category          []string `json:"category" binding:"required,min=1,dive,objectid"`
	InStock           bool     `json:"inStock"`
	Description       string   `json:"description" binding:"required"`
	IsFeatured        bool     `json:"isFeatured"`
	Quantity          int      `json:"quantity" binding:"gte=0"`
	IsActive          bool     `json:"isActive"`
	InTheBox          string   `json:"inTheBox"`
	RelatedCategories []string `json:"relatedCategories"`
	ProductGallery    []string `json:"productGallery"`
}

// UpdateProductRequest is a partial product update. A new title re-derives the
// slug and sku; new categories are re-validated.
type UpdateProductRequest struct {
	Title             *string  `json:"title"`
	Feature           *string  `json:"feature"`
	Price             *float64 `json:"price" binding:"omitempty,gt=0"`
	Category          []string `json:"category"`
	InStock           *bool    `json:"inStock"`
	Description       *string  `json:"description"`
	IsFeatured        *bool    `json:"isFeatured"`
	Quantity          *int     `json:"quantity" binding:"omitempty,gte=0"`
	IsActive          *bool    `json:"isActive"`
	InTheBox          *string  `json:"inTheBox"`
	RelatedCategories []string `json:"relatedCategories"`
	ProductGallery    []string `json:"productGallery"`
}

// ListProductsParams drives the paginated product listing.
type ListProductsParams struct {
	Page       int
	PageSize   int
	SortKey    string
	Search     string
	IsFeatured *bool
	InStock    *bool
	MinPrice   *float64
	MaxPrice   *float64
	CategoryID primitive.ObjectID
}
