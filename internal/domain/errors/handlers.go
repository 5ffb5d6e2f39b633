package errors

// ErrorInfo carries the machine-readable part of a failed response.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "BLOG_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description, hidden for 500s outside debug
}

// Response is the envelope written for every failed request.
type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
