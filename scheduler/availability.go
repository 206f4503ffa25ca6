package scheduler

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/salonbook/salon-booking/models"
)

var ErrBadDate = errors.New("date must be in YYYY-MM-DD format")

const dateLayout = "2006-01-02"

// DayWindow returns the half-open UTC window [00:00, next midnight) for a
// calendar date. A slot starting 23:30Z belongs to its own day only.
func DayWindow(date string) (time.Time, time.Time, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDate
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1), nil
}

// ListDay returns every slot of the professional whose start instant falls on
// the given UTC day, ascending by start. Both available and reserved slots are
// included; filtering to bookable ones is the caller's concern.
func ListDay(database *gorm.DB, professionalID uint, date string) ([]models.AvailabilitySlot, error) {
	start, end, err := DayWindow(date)
	if err != nil {
		return nil, err
	}

	var slots []models.AvailabilitySlot
	err = database.
		Where("professional_id = ? AND start_time >= ? AND start_time < ?", professionalID, start, end).
		Order("start_time asc").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}
