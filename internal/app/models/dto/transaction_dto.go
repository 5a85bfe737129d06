package dto

// CreateTransactionRequest records a completed withdrawal
type CreateTransactionRequest struct {
	UserID        string  `json:"user_id" binding:"required"`
	ProductID     string  `json:"product_id" binding:"required"`
	QuantityTaken float64 `json:"quantity_taken" binding:"required,gt=0"`
}

// CreateTransactionResponse returns the generated transaction id
type CreateTransactionResponse struct {
	Message       string `json:"message"`
	TransactionID int64  `json:"transaction_id"`
}

// StatusCountsResponse surfaces distinct-user counts for the two named
// statuses; other status values are counted but not exposed by name.
type StatusCountsResponse struct {
	UndergraduateCount int64 `json:"undergraduate_count"`
	GraduateCount      int64 `json:"graduate_count"`
}

// CheckoutLine is one cart line of a batch checkout. Exactly one of
// quantity/weight must be provided and positive.
type CheckoutLine struct {
	ProductID string   `json:"product_id" binding:"required"`
	Quantity  *int64   `json:"quantity" binding:"omitempty,gt=0"`
	Weight    *float64 `json:"weight" binding:"omitempty,gt=0"`
}

// CheckoutRequest performs withdrawal plus recording for a whole cart in a
// single database transaction.
type CheckoutRequest struct {
	UserID string         `json:"user_id" binding:"required"`
	Lines  []CheckoutLine `json:"lines" binding:"required,min=1,dive"`
}

// CheckoutResponse returns one transaction id per checked-out line
type CheckoutResponse struct {
	Message        string  `json:"message"`
	TransactionIDs []int64 `json:"transaction_ids"`
}
