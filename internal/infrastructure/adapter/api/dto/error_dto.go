package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ConflictErrorResponse is returned when requested entries are locked by another owner
type ConflictErrorResponse struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Conflicts []LockResponse `json:"conflicts"`
}
