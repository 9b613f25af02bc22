package dto

// HealthResponse reports liveness and dependency reachability.
type HealthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}

// CacheRefreshResponse lists the cache entries an admin refresh dropped.
type CacheRefreshResponse struct {
	Refreshed []string `json:"refreshed"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse carries per-field messages.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Errors  map[string]string `json:"errors"`
}
