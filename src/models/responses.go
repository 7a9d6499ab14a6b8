package models

// Response is the envelope every endpoint answers with. Message carries the
// payload on success and an ErrorDetail on failure.
type Response struct {
	Status  int         `json:"status"`
	Message interface{} `json:"message"`
}

// ErrorDetail contains detailed error information
type ErrorDetail struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// WriteResult represents the response data for a stored record
type WriteResult struct {
	Message string        `json:"message"`
	Stored  *StoredRecord `json:"stored"`
}

// DeleteResult represents the response data for a deleted record
type DeleteResult struct {
	Message string `json:"message"`
}

// HealthStatus represents the response data for the health check
type HealthStatus struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}
