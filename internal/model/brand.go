package model

import "time"

// Brand is the mark an introducer uses on animals of one or more species.
type Brand struct {
	ID          int                     `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Introducer  Optional[IntroducerRef] `json:"introducer,omitzero"`
	Species     []Specie                `json:"species"`
	Status      bool                    `json:"status"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

type BrandRequest struct {
	Name         string `json:"name" form:"name" validate:"required,max=100"`
	Description  string `json:"description" form:"description" validate:"omitempty,max=255"`
	IntroducerID int    `json:"introducerId,omitempty" form:"introducerId,omitempty" validate:"omitempty,min=1"`
	SpecieIDs    []int  `json:"specieIds" form:"specieIds" validate:"required,min=1,dive,min=1"`
	Status       bool   `json:"status" form:"status"`
}

type BrandFilter struct {
	Page
	Name         string `json:"name,omitempty" form:"name,omitempty"`
	IntroducerID int    `json:"introducerId,omitempty" form:"introducerId,omitempty"`
	SpecieID     int    `json:"specieId,omitempty" form:"specieId,omitempty"`
	Status       *bool  `json:"status,omitempty" form:"status,omitempty"`
}
