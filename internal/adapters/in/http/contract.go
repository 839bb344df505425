package http

import "github.com/google/uuid"

// NewOrder is the request body for creating an order.
type NewOrder struct {
	Description string `json:"description"`
}

// Order is the API representation of a pizza order.
type Order struct {
	Id          uuid.UUID `json:"id"`
	Code        string    `json:"orderCode"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

// Error is the API representation of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
