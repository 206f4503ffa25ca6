package db

import (
	"github.com/rs/zerolog/log"

	"github.com/salonbook/salon-booking/models"
)

func Migrate() {
	if DB == nil {
		Init()
	}

	err := DB.AutoMigrate(
		&models.Professional{},
		&models.Service{},
		&models.TemplateEntry{},
		&models.AvailabilitySlot{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	log.Info().Msg("migrations applied")
}
