package dto

// MessageResponse represents a plain success message
type MessageResponse struct {
	Message string `json:"message"`
}

// AffectedRowsResponse reports how many rows a bulk write touched
type AffectedRowsResponse struct {
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}
