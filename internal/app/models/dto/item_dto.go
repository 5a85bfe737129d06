package dto

import "github.com/retriever-essentials/pantry/internal/app/models"

// CreateItemRequest carries the fields required to create an item. Exactly
// one of order_quantity/weight_amount should be positive; the database
// enforces that they are never both positive.
type CreateItemRequest struct {
	ProductID          string   `json:"product_id" binding:"required"`
	ProductName        string   `json:"product_name" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	Type               string   `json:"type" binding:"required"`
	VendorID           int64    `json:"vendor_id" binding:"required"`
	PricePerUnit       float64  `json:"price_per_unit" binding:"required"`
	OrderQuantity      *int64   `json:"order_quantity"`
	WeightAmount       *float64 `json:"weight_amount"`
	MaxSignoutQuantity *int64   `json:"max_signout_quantity"`
	MaxSignoutWeight   *float64 `json:"max_signout_weight"`
}

// UpdateItemRequest replaces an item's mutable fields
type UpdateItemRequest struct {
	ProductName        string   `json:"product_name" binding:"required"`
	Description        string   `json:"description"`
	Type               string   `json:"type"`
	VendorID           int64    `json:"vendor_id" binding:"required"`
	PricePerUnit       float64  `json:"price_per_unit"`
	OrderQuantity      *int64   `json:"order_quantity"`
	WeightAmount       *float64 `json:"weight_amount"`
	MaxSignoutQuantity *int64   `json:"max_signout_quantity"`
	MaxSignoutWeight   *float64 `json:"max_signout_weight"`
}

// CreateItemResponse echoes the created item
type CreateItemResponse struct {
	Message string       `json:"message"`
	ID      string       `json:"id"`
	Item    *models.Item `json:"item"`
}

// WithdrawRequest asks to decrement an item's stock. Exactly one of
// quantity/weight must be provided and positive; which one is valid is
// decided by the stored item, not the caller.
type WithdrawRequest struct {
	Quantity *int64   `json:"quantity" binding:"omitempty,gt=0"`
	Weight   *float64 `json:"weight" binding:"omitempty,gt=0"`
}

// WithdrawResponse returns the post-withdrawal item alongside the
// pre/post stock snapshot.
type WithdrawResponse struct {
	Message     string       `json:"message"`
	UpdatedItem *models.Item `json:"updatedItem"`
	Before      models.Stock `json:"before"`
	After       models.Stock `json:"after"`
}

// RestockRequest adds supply to an existing item
type RestockRequest struct {
	Quantity *int64   `json:"quantity" binding:"omitempty,gt=0"`
	Weight   *float64 `json:"weight" binding:"omitempty,gt=0"`
}

// RestockResponse echoes the item after a restock
type RestockResponse struct {
	Message     string       `json:"message"`
	UpdatedItem *models.Item `json:"updatedItem"`
}

// GlobalLimitsRequest overwrites the sign-out caps for every item
type GlobalLimitsRequest struct {
	MaxSignoutQuantity *int64   `json:"max_signout_quantity" binding:"omitempty,gt=0"`
	MaxSignoutWeight   *float64 `json:"max_signout_weight" binding:"omitempty,gt=0"`
}
