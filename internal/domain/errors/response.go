package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "UNAUTHORIZED"
	Details string `json:"details,omitempty"` // Detailed error description (optional)
}

// Response defines the JSON shape for error responses produced by the
// HTTP error handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
