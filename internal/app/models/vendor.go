package models

// Vendor represents a supplier owning zero or more items
type Vendor struct {
	VendorID      int64   `json:"vendor_id" db:"vendor_id"`
	VendorName    string  `json:"vendor_name" db:"vendor_name"`
	ContactPerson *string `json:"contact_person" db:"contact_person"`
	Address       *string `json:"address" db:"address"`
	Phone         *string `json:"phone" db:"phone"`
	Email         *string `json:"email" db:"email"`
}
