package model

import "time"

// CorralGroup is the logical grouping of holding pens on a line.
type CorralGroup struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Line        Optional[Line] `json:"line,omitzero"`
	Status      bool           `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type CorralGroupRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description" validate:"omitempty,max=255"`
	LineID      int    `json:"lineId" form:"lineId" validate:"required,min=1"`
	Status      bool   `json:"status" form:"status"`
}

type CorralGroupFilter struct {
	Page
	Name   string `json:"name,omitempty" form:"name,omitempty"`
	LineID int    `json:"lineId,omitempty" form:"lineId,omitempty"`
	Status *bool  `json:"status,omitempty" form:"status,omitempty"`
}

// Corral is a physical holding pen.
type Corral struct {
	ID              int                   `json:"id"`
	Name            string                `json:"name"`
	Code            string                `json:"code"`
	MaximumCapacity int                   `json:"maximumCapacity"`
	CorralGroup     Optional[CorralGroup] `json:"corralGroup,omitzero"`
	Status          bool                  `json:"status"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

type CorralRequest struct {
	Name            string `json:"name" form:"name" validate:"required,max=100"`
	Code            string `json:"code" form:"code" validate:"required,max=20"`
	MaximumCapacity int    `json:"maximumCapacity" form:"maximumCapacity" validate:"required,min=1"`
	CorralGroupID   int    `json:"corralGroupId" form:"corralGroupId" validate:"required,min=1"`
	Status          bool   `json:"status" form:"status"`
}

type CorralFilter struct {
	Page
	Name          string `json:"name,omitempty" form:"name,omitempty"`
	Code          string `json:"code,omitempty" form:"code,omitempty"`
	CorralGroupID int    `json:"corralGroupId,omitempty" form:"corralGroupId,omitempty"`
	Status        *bool  `json:"status,omitempty" form:"status,omitempty"`
}
