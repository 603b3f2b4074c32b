package model

import "time"

// Line is a slaughter line; corral groups hang off a line.
type Line struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Specie      Optional[Specie] `json:"specie,omitzero"`
	Status      bool             `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type LineRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description" validate:"omitempty,max=255"`
	SpecieID    int    `json:"specieId" form:"specieId" validate:"required,min=1"`
	Status      bool   `json:"status" form:"status"`
}

type LineFilter struct {
	Page
	Name     string `json:"name,omitempty" form:"name,omitempty"`
	SpecieID int    `json:"specieId,omitempty" form:"specieId,omitempty"`
	Status   *bool  `json:"status,omitempty" form:"status,omitempty"`
}
