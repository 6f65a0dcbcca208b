package dto

import "time"

// CreateSalesRepRequest body for POST /api/sales-reps.
type CreateSalesRepRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin rep"`
	Division string `json:"division" validate:"required"`
	IsActive *bool  `json:"isActive"`
}

// UpdateSalesRepRequest body for PATCH /api/sales-reps/:id. Nil means "leave as is".
type UpdateSalesRepRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin rep"`
	Division *string `json:"division"`
	IsActive *bool   `json:"isActive"`
}

// SalesRepResponse wire shape of a sales rep.
type SalesRepResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Division  string    `json:"division"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
