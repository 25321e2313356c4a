package errors

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// MessageResponse is the body of a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse converts an AppError into its wire form.
func NewErrorResponse(appErr AppError) *ErrorResponse {
	return &ErrorResponse{
		Type:    appErr.ErrorCode(),
		Message: appErr.Message(),
	}
}
