package model

import "time"

type VehicleType struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type VehicleTypeRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description" validate:"omitempty,max=255"`
	Status      bool   `json:"status" form:"status"`
}

type VehicleTypeFilter struct {
	Page
	Name   string `json:"name,omitempty" form:"name,omitempty"`
	Status *bool  `json:"status,omitempty" form:"status,omitempty"`
}

type Vehicle struct {
	ID          int                   `json:"id"`
	Plate       string                `json:"plate"`
	Make        string                `json:"make"`
	Model       string                `json:"model"`
	Color       string                `json:"color"`
	Year        int                   `json:"year"`
	VehicleType Optional[VehicleType] `json:"vehicleType,omitzero"`
	Status      bool                  `json:"status"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

type VehicleRequest struct {
	Plate         string `json:"plate" form:"plate" validate:"required,min=6,max=8,alphanum"`
	Make          string `json:"make" form:"make" validate:"omitempty,max=50"`
	Model         string `json:"model" form:"model" validate:"omitempty,max=50"`
	Color         string `json:"color" form:"color" validate:"omitempty,max=30"`
	Year          int    `json:"year,omitempty" form:"year,omitempty" validate:"omitempty,min=1950,max=2100"`
	VehicleTypeID int    `json:"vehicleTypeId" form:"vehicleTypeId" validate:"required,min=1"`
	Status        bool   `json:"status" form:"status"`
}

type VehicleFilter struct {
	Page
	Plate         string `json:"plate,omitempty" form:"plate,omitempty"`
	VehicleTypeID int    `json:"vehicleTypeId,omitempty" form:"vehicleTypeId,omitempty"`
	Status        *bool  `json:"status,omitempty" form:"status,omitempty"`
}

// Carrier transports animals to the camal.
type Carrier struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Identification string            `json:"identification"`
	Phone          string            `json:"phone"`
	Vehicle        Optional[Vehicle] `json:"vehicle,omitzero"`
	Status         bool              `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type CarrierRequest struct {
	Name           string `json:"name" form:"name" validate:"required,max=150"`
	Identification string `json:"identification" form:"identification" validate:"required,min=10,max=13,numeric"`
	Phone          string `json:"phone" form:"phone" validate:"omitempty,max=15"`
	VehicleID      int    `json:"vehicleId,omitempty" form:"vehicleId,omitempty" validate:"omitempty,min=1"`
	Status         bool   `json:"status" form:"status"`
}

type CarrierFilter struct {
	Page
	Name           string `json:"name,omitempty" form:"name,omitempty"`
	Identification string `json:"identification,omitempty" form:"identification,omitempty"`
	Plate          string `json:"plate,omitempty" form:"plate,omitempty"`
	Status         *bool  `json:"status,omitempty" form:"status,omitempty"`
}
