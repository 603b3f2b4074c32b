package model

import "time"

type Person struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Identification string    `json:"identification"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Status         bool      `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FullName joins first and last name the way lists display them.
func (p Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

type PersonRequest struct {
	FirstName      string `json:"firstName" form:"firstName" validate:"required,max=100"`
	LastName       string `json:"lastName" form:"lastName" validate:"required,max=100"`
	Identification string `json:"identification" form:"identification" validate:"required,min=10,max=13,numeric"`
	Email          string `json:"email" form:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" form:"phone" validate:"omitempty,max=15"`
	Address        string `json:"address" form:"address" validate:"omitempty,max=255"`
	Status         bool   `json:"status" form:"status"`
}

type PersonFilter struct {
	Page
	Identification string `json:"identification,omitempty" form:"identification,omitempty"`
	FullName       string `json:"fullName,omitempty" form:"fullName,omitempty"`
	Status         *bool  `json:"status,omitempty" form:"status,omitempty"`
}
