package models

import (
	"time"

	"gorm.io/gorm"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotReserved  SlotStatus = "reserved"
)

// AvailabilitySlot is a single bookable time point for one professional.
// The composite unique index on (professional_id, start_time) is what keeps
// two concurrent generation batches from inserting the same slot twice.
type AvailabilitySlot struct {
	gorm.Model
	ProfessionalID uint         `json:"professional_id" gorm:"uniqueIndex:idx_slot_professional_start"`
	Professional   Professional `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	StartTime      time.Time    `json:"start_time" gorm:"uniqueIndex:idx_slot_professional_start"`
	Status         SlotStatus   `json:"status"`
}

func (s *AvailabilitySlot) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = SlotAvailable
	}
	return nil
}
