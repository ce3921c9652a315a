package dto

import "time"

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"pong"`
	Status  string `json:"status" example:"success"`
}

// PaginationInfo carries page metadata for paginated listings
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"7"`
	PageSize    int   `json:"pageSize" example:"20"`
	TotalItems  int64 `json:"totalItems" example:"131"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Database  string    `json:"database" example:"mongo"`
	Timestamp time.Time `json:"timestamp"`
}
