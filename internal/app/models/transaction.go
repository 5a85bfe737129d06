package models

import "time"

// Transaction is an immutable append-only withdrawal record. It keeps weak
// references to user and item by id and a snapshot of the user's status at
// the time of withdrawal, so it survives later mutations of those rows.
type Transaction struct {
	TransactionID int64     `json:"transaction_id" db:"transaction_id"`
	UserID        string    `json:"user_id" db:"user_id"`
	ProductID     string    `json:"product_id" db:"product_id"`
	QuantityTaken float64   `json:"quantity_taken" db:"quantity_taken"`
	UserStatus    string    `json:"user_status" db:"user_status"`
	TakenAt       time.Time `json:"taken_at" db:"taken_at"`

	// Joined display fields, populated by listing queries only
	ProductName string `json:"product_name,omitempty" db:"product_name"`
	ProductType string `json:"type,omitempty" db:"type"`
	Username    string `json:"username,omitempty" db:"username"`
}

// StatusUserCount holds the number of distinct users per normalized status.
type StatusUserCount struct {
	UserStatus string `json:"user_status" db:"user_status"`
	Count      int64  `json:"count" db:"count"`
}
