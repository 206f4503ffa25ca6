package models

import (
	"gorm.io/gorm"
)

type Professional struct {
	gorm.Model
	Name     string  `json:"name"`
	PhotoURL *string `json:"photo_url"`

	AvailabilitySlots []AvailabilitySlot `json:"availability_slots,omitempty" gorm:"foreignKey:ProfessionalID"`
	TemplateEntries   []TemplateEntry    `json:"template_entries,omitempty" gorm:"foreignKey:ProfessionalID"`
}
