package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Code    int               `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// InsufficientBalanceResponse explains a rejected debit in full
type InsufficientBalanceResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Code     int    `json:"code,omitempty"`
	Required int64  `json:"required"`
	Current  int64  `json:"current"`
	Missing  int64  `json:"missing"`
}
