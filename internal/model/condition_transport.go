package model

import "time"

// ConditionTransport is the certificate describing vehicle and animal
// condition at arrival.
type ConditionTransport struct {
	ID                  int                  `json:"id"`
	CertificateNumber   string               `json:"certificateNumber"`
	Introducer          Optional[Introducer] `json:"introducer,omitzero"`
	Vehicle             Optional[Vehicle]    `json:"vehicle,omitzero"`
	OriginPlace         string               `json:"originPlace"`
	ArrivalAt           time.Time            `json:"arrivalAt"`
	AnimalCount         int                  `json:"animalCount"`
	DeadOnArrival       int                  `json:"deadOnArrival"`
	CleanVehicle        bool                 `json:"cleanVehicle"`
	AdequateVentilation bool                 `json:"adequateVentilation"`
	AnimalsInGoodHealth bool                 `json:"animalsInGoodHealth"`
	Observations        string               `json:"observations"`
	Status              bool                 `json:"status"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

type ConditionTransportRequest struct {
	CertificateNumber   string    `json:"certificateNumber" form:"certificateNumber" validate:"required,max=30"`
	IntroducerID        int       `json:"introducerId" form:"introducerId" validate:"required,min=1"`
	VehicleID           int       `json:"vehicleId" form:"vehicleId" validate:"required,min=1"`
	OriginPlace         string    `json:"originPlace" form:"originPlace" validate:"required,max=150"`
	ArrivalAt           time.Time `json:"arrivalAt" form:"arrivalAt" validate:"required"`
	AnimalCount         int       `json:"animalCount" form:"animalCount" validate:"required,min=1"`
	DeadOnArrival       int       `json:"deadOnArrival" form:"deadOnArrival" validate:"min=0,ltefield=AnimalCount"`
	CleanVehicle        bool      `json:"cleanVehicle" form:"cleanVehicle"`
	AdequateVentilation bool      `json:"adequateVentilation" form:"adequateVentilation"`
	AnimalsInGoodHealth bool      `json:"animalsInGoodHealth" form:"animalsInGoodHealth"`
	Observations        string    `json:"observations" form:"observations" validate:"omitempty,max=500"`
	Status              bool      `json:"status" form:"status"`
}

type ConditionTransportFilter struct {
	Page
	CertificateNumber string `json:"certificateNumber,omitempty" form:"certificateNumber,omitempty"`
	IntroducerID      int    `json:"introducerId,omitempty" form:"introducerId,omitempty"`
	Plate             string `json:"plate,omitempty" form:"plate,omitempty"`
	DateFrom          string `json:"dateFrom,omitempty" form:"dateFrom,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo            string `json:"dateTo,omitempty" form:"dateTo,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status            *bool  `json:"status,omitempty" form:"status,omitempty"`
}
