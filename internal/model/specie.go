package model

import "time"

type Specie struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SpecieRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description" validate:"omitempty,max=255"`
	Status      bool   `json:"status" form:"status"`
}

type SpecieFilter struct {
	Page
	Name   string `json:"name,omitempty" form:"name,omitempty"`
	Status *bool  `json:"status,omitempty" form:"status,omitempty"`
}
