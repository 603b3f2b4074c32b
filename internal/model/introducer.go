package model

import "time"

// Introducer is an entity authorized to bring livestock for processing.
type Introducer struct {
	ID             int              `json:"id"`
	Person         Optional[Person] `json:"person,omitzero"`
	Code           string           `json:"code"`
	Name           string           `json:"name"`
	Identification string           `json:"identification"`
	Phone          string           `json:"phone"`
	Email          string           `json:"email"`
	Address        string           `json:"address"`
	Brands         []Brand          `json:"brands"`
	Status         bool             `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// IntroducerRef is the trimmed introducer embedded in a brand.
type IntroducerRef struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type IntroducerRequest struct {
	PersonID       int    `json:"personId,omitempty" form:"personId,omitempty"`
	Code           string `json:"code" form:"code" validate:"required,max=20"`
	Name           string `json:"name" form:"name" validate:"required,max=150"`
	Identification string `json:"identification" form:"identification" validate:"required,min=10,max=13,numeric"`
	Phone          string `json:"phone" form:"phone" validate:"omitempty,max=15"`
	Email          string `json:"email" form:"email" validate:"omitempty,email"`
	Address        string `json:"address" form:"address" validate:"omitempty,max=255"`
	BrandIDs       []int  `json:"brandIds,omitempty" form:"brandIds,omitempty"`
	Status         bool   `json:"status" form:"status"`
}

type IntroducerFilter struct {
	Page
	Code           string `json:"code,omitempty" form:"code,omitempty"`
	Name           string `json:"name,omitempty" form:"name,omitempty"`
	Identification string `json:"identification,omitempty" form:"identification,omitempty"`
	Status         *bool  `json:"status,omitempty" form:"status,omitempty"`
}
