package api

// TokenRequest is the payload signed into the auth cookie.
type TokenRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name"`
}

// SuccessResponse is returned by the cookie endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse reports gateway reachability.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
