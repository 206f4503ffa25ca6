package cron

import (
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/salonbook/salon-booking/db"
	"github.com/salonbook/salon-booking/metrics"
	"github.com/salonbook/salon-booking/models"
	"github.com/salonbook/salon-booking/scheduler"
)

// StartCronJobs starts the scheduler that keeps the availability horizon
// rolled forward for every professional with a stored weekly template.
func StartCronJobs() {
	c := cron.New()
	// Nightly, after the day has rolled over in every relevant timezone.
	_, err := c.AddFunc("0 3 * * *", rollAvailabilityHorizon)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to add cron job")
	}
	c.Start()
	log.Info().Msg("cron scheduler started for availability horizon")
}

// rollAvailabilityHorizon re-applies every stored weekly template over the
// configured horizon. Generation skips existing slots, so running this daily
// only ever appends the newly reachable days.
func rollAvailabilityHorizon() {
	weeks := scheduler.HorizonWeeks()

	var professionalIDs []uint
	err := db.DB.Model(&models.TemplateEntry{}).
		Distinct("professional_id").
		Pluck("professional_id", &professionalIDs).Error
	if err != nil {
		log.Error().Err(err).Msg("failed to list professionals with templates")
		return
	}

	generator := scheduler.NewGenerator(db.DB)
	for _, professionalID := range professionalIDs {
		template, err := scheduler.LoadTemplate(db.DB, professionalID)
		if err != nil {
			log.Error().Err(err).Uint("professional_id", professionalID).
				Msg("failed to load template")
			continue
		}

		created, err := generator.FromTemplate(professionalID, template, weeks, time.Now())
		if errors.Is(err, scheduler.ErrNothingToGenerate) {
			continue
		}
		if err != nil {
			log.Error().Err(err).Uint("professional_id", professionalID).
				Msg("failed to roll availability horizon")
			continue
		}

		metrics.AddSlotsGenerated(len(created))
		log.Info().Uint("professional_id", professionalID).
			Int("slots", len(created)).
			Msg("availability horizon extended")
	}
}
