package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// TemplateEntry is one cell of a professional's weekly availability template:
// "on this weekday, a slot starts at this time of day".
type TemplateEntry struct {
	gorm.Model
	ProfessionalID uint         `json:"professional_id" gorm:"uniqueIndex:idx_template_professional_day_time"`
	Professional   Professional `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	DayOfWeek      DayOfWeek    `json:"day_of_week" gorm:"uniqueIndex:idx_template_professional_day_time"`
	TimeOfDay      string       `json:"time_of_day" gorm:"uniqueIndex:idx_template_professional_day_time"` // Format "HH:MM" in 24h
}
