package scheduler

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/salonbook/salon-booking/models"
)

const defaultHorizonWeeks = 2

// HorizonWeeks reads the slot generation horizon from the environment,
// falling back to two weeks.
func HorizonWeeks() int {
	raw := os.Getenv("HORIZON_WEEKS")
	if raw == "" {
		return defaultHorizonWeeks
	}
	weeks, err := strconv.Atoi(raw)
	if err != nil || weeks < 1 {
		return defaultHorizonWeeks
	}
	return weeks
}

// ErrEmptyTemplate is returned when a weekly template carries no times of day
// for any weekday. Generation fails fast on it, before touching storage.
var ErrEmptyTemplate = errors.New("weekly template has no times of day")

const timeOfDayLayout = "15:04"

// WeekTemplate maps a weekday to the times of day ("HH:MM", 24h) at which a
// slot starts on that weekday.
type WeekTemplate map[time.Weekday][]string

// Validate checks the template carries at least one well-formed time of day.
func (t WeekTemplate) Validate() error {
	total := 0
	for day, times := range t {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("invalid weekday %d", int(day))
		}
		for _, tod := range times {
			if _, err := time.Parse(timeOfDayLayout, tod); err != nil {
				return fmt.Errorf("invalid time of day %q (want HH:MM)", tod)
			}
			total++
		}
	}
	if total == 0 {
		return ErrEmptyTemplate
	}
	return nil
}

// Expand materializes the template over the next weeks*7 calendar days
// starting at from (inclusive). Every candidate is the calendar day combined
// with the template time of day, interpreted as UTC. That is a fixed
// convention shared with the availability day window, not a configuration
// knob.
func (t WeekTemplate) Expand(from time.Time, weeks int) []time.Time {
	if weeks < 1 {
		weeks = 1
	}

	utc := from.UTC()
	first := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	var starts []time.Time
	for i := 0; i < weeks*7; i++ {
		day := first.AddDate(0, 0, i)

		times := append([]string(nil), t[day.Weekday()]...)
		sort.Strings(times) // "HH:MM" sorts chronologically

		for _, tod := range times {
			parsed, err := time.Parse(timeOfDayLayout, tod)
			if err != nil {
				continue // Validate is the gate for malformed entries
			}
			starts = append(starts, time.Date(day.Year(), day.Month(), day.Day(),
				parsed.Hour(), parsed.Minute(), 0, 0, time.UTC))
		}
	}
	return starts
}

// LoadTemplate rebuilds a professional's WeekTemplate from its stored entries.
func LoadTemplate(database *gorm.DB, professionalID uint) (WeekTemplate, error) {
	var entries []models.TemplateEntry
	err := database.Where("professional_id = ?", professionalID).
		Order("day_of_week asc, time_of_day asc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load template entries: %w", err)
	}

	template := WeekTemplate{}
	for _, entry := range entries {
		day := time.Weekday(entry.DayOfWeek)
		template[day] = append(template[day], entry.TimeOfDay)
	}
	return template, nil
}
