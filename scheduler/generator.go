package scheduler

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salonbook/salon-booking/models"
)

// ErrNothingToGenerate is reported when every candidate start instant already
// exists for the professional. It is an outcome, not a storage failure.
var ErrNothingToGenerate = errors.New("no new slots to generate")

// Generator materializes availability slots for a professional.
type Generator struct {
	db *gorm.DB
}

func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{db: db}
}

// FromTemplate validates and expands a weekly template over the horizon and
// generates the resulting slots.
func (g *Generator) FromTemplate(professionalID uint, template WeekTemplate, weeks int, from time.Time) ([]models.AvailabilitySlot, error) {
	if err := template.Validate(); err != nil {
		return nil, err
	}
	return g.Generate(professionalID, template.Expand(from, weeks))
}

// Generate batch-inserts the candidate start instants as available slots.
// Candidates that collide with an existing slot for the professional are
// silently skipped. A racing batch inserting the same (professional, start)
// pair is absorbed by ON CONFLICT DO NOTHING on the unique index; a duplicate
// is never an error.
func (g *Generator) Generate(professionalID uint, starts []time.Time) ([]models.AvailabilitySlot, error) {
	if len(starts) == 0 {
		return nil, ErrNothingToGenerate
	}

	var existing []time.Time
	res := g.db.Model(&models.AvailabilitySlot{}).
		Where("professional_id = ? AND start_time IN ?", professionalID, starts).
		Pluck("start_time", &existing)
	if res.Error != nil {
		return nil, fmt.Errorf("query existing slots: %w", res.Error)
	}

	taken := make(map[int64]struct{}, len(existing))
	for _, t := range existing {
		taken[t.Unix()] = struct{}{}
	}

	var slots []models.AvailabilitySlot
	for _, start := range starts {
		if _, ok := taken[start.Unix()]; ok {
			continue
		}
		taken[start.Unix()] = struct{}{} // also dedupes the incoming batch
		slots = append(slots, models.AvailabilitySlot{
			ProfessionalID: professionalID,
			StartTime:      start.UTC(),
			Status:         models.SlotAvailable,
		})
	}

	if len(slots) == 0 {
		return nil, ErrNothingToGenerate
	}

	insert := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "professional_id"}, {Name: "start_time"}},
		DoNothing: true,
	}).Create(&slots)
	if insert.Error != nil {
		return nil, fmt.Errorf("insert availability slots: %w", insert.Error)
	}

	return slots, nil
}
