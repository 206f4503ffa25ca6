package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment is created by the booking flow when a slot is claimed.
// ProfessionalID is denormalized from the claimed slot so listings do not
// have to join back through availability_slots.
type Appointment struct {
	gorm.Model
	ServiceID      uint              `json:"service_id"`
	Service        Service           `json:"service" gorm:"foreignKey:ServiceID"`
	ProfessionalID uint              `json:"professional_id"`
	Professional   Professional      `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	StartTime      time.Time         `json:"start_time"`
	EndTime        time.Time         `json:"end_time"`
	ClientName     string            `json:"client_name"`
	ClientPhone    string            `json:"client_phone"`
	Status         AppointmentStatus `json:"status"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusConfirmed
	}
	return nil
}
