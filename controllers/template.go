package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/salonbook/salon-booking/db"
	"github.com/salonbook/salon-booking/metrics"
	"github.com/salonbook/salon-booking/models"
	"github.com/salonbook/salon-booking/scheduler"
	"github.com/salonbook/salon-booking/utils"
	"gorm.io/gorm"
)

type applyTemplateRequest struct {
	Template map[int][]string `json:"template"` // weekday (0=Sunday) -> ["HH:MM", ...]
	Weeks    int              `json:"weeks"`
}

// GetTemplate returns a professional's stored weekly template entries.
func GetTemplate(c *fiber.Ctx) error {
	id := c.Params("id")
	var entries []models.TemplateEntry
	err := db.DB.Where("professional_id = ?", id).
		Order("day_of_week asc, time_of_day asc").
		Find(&entries).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get template",
		})
	}
	return c.JSON(entries)
}

// ApplyTemplate replaces a professional's stored weekly template and
// immediately materializes it over the horizon. Re-applying the same template
// creates no duplicate slots.
func ApplyTemplate(c *fiber.Ctx) error {
	professionalID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Professional id must be numeric",
			Error:   err.Error(),
		})
	}
	var professional models.Professional
	if err := db.DB.First(&professional, professionalID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Professional not found",
		})
	}

	var req applyTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	template := scheduler.WeekTemplate{}
	for day, times := range req.Template {
		template[time.Weekday(day)] = times
	}
	if err := template.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid weekly template",
			Error:   err.Error(),
		})
	}

	weeks := req.Weeks
	if weeks < 1 {
		weeks = scheduler.HorizonWeeks()
	}

	// Replace the stored template so the horizon-roll job keeps applying it.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Hard delete so replaced entries free their unique index slots.
		if err := tx.Unscoped().Where("professional_id = ?", professionalID).
			Delete(&models.TemplateEntry{}).Error; err != nil {
			return err
		}
		var entries []models.TemplateEntry
		for day, times := range template {
			for _, tod := range times {
				entries = append(entries, models.TemplateEntry{
					ProfessionalID: uint(professionalID),
					DayOfWeek:      models.DayOfWeek(day),
					TimeOfDay:      tod,
				})
			}
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to store template",
			Error:   err.Error(),
		})
	}

	created, err := scheduler.NewGenerator(db.DB).FromTemplate(uint(professionalID), template, weeks, time.Now())
	if errors.Is(err, scheduler.ErrNothingToGenerate) {
		return c.JSON(fiber.Map{"message": "All slots already exist, nothing to generate"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate slots from template",
			Error:   err.Error(),
		})
	}

	metrics.AddSlotsGenerated(len(created))
	return c.Status(fiber.StatusCreated).JSON(created)
}
