package dto

import "github.com/retriever-essentials/pantry/internal/app/models"

// VendorRequest carries vendor fields for create and update. Only the name
// is required; contact fields are optional.
type VendorRequest struct {
	VendorName    string  `json:"vendor_name" binding:"required"`
	ContactPerson *string `json:"contact_person"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
}

// CreateVendorResponse echoes the created vendor
type CreateVendorResponse struct {
	Message string         `json:"message"`
	ID      int64          `json:"id"`
	Vendor  *models.Vendor `json:"vendor"`
}
