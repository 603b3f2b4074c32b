package model

import "time"

// Disinfection records the disinfection of a vehicle on arrival.
type Disinfection struct {
	ID                int               `json:"id"`
	CertificateNumber string            `json:"certificateNumber"`
	Vehicle           Optional[Vehicle] `json:"vehicle,omitzero"`
	Carrier           Optional[Carrier] `json:"carrier,omitzero"`
	Disinfectant      string            `json:"disinfectant"`
	Dosage            string            `json:"dosage"`
	PerformedAt       time.Time         `json:"performedAt"`
	Observations      string            `json:"observations"`
	Status            bool              `json:"status"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

type DisinfectionRequest struct {
	CertificateNumber string    `json:"certificateNumber" form:"certificateNumber" validate:"required,max=30"`
	VehicleID         int       `json:"vehicleId" form:"vehicleId" validate:"required,min=1"`
	CarrierID         int       `json:"carrierId" form:"carrierId" validate:"required,min=1"`
	Disinfectant      string    `json:"disinfectant" form:"disinfectant" validate:"required,max=100"`
	Dosage            string    `json:"dosage" form:"dosage" validate:"omitempty,max=50"`
	PerformedAt       time.Time `json:"performedAt" form:"performedAt" validate:"required"`
	Observations      string    `json:"observations" form:"observations" validate:"omitempty,max=500"`
	Status            bool      `json:"status" form:"status"`
}

type DisinfectionFilter struct {
	Page
	CertificateNumber string `json:"certificateNumber,omitempty" form:"certificateNumber,omitempty"`
	Plate             string `json:"plate,omitempty" form:"plate,omitempty"`
	DateFrom          string `json:"dateFrom,omitempty" form:"dateFrom,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo            string `json:"dateTo,omitempty" form:"dateTo,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status            *bool  `json:"status,omitempty" form:"status,omitempty"`
}
