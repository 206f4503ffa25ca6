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
)

type generateSlotsRequest struct {
	ProfessionalID uint     `json:"professionalId"`
	Slots          []string `json:"slots"` // RFC 3339 start instants
}

// GenerateSlots godoc
// @Summary Create availability slots from a batch of start instants
// @Description Inserts the given start instants as available slots for a professional, skipping ones that already exist
// @Tags slots
// @Accept json
// @Produce json
// @Param request body generateSlotsRequest true "Professional and start instants"
// @Success 201 {array} models.AvailabilitySlot
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /slots [post]
func GenerateSlots(c *fiber.Ctx) error {
	var req generateSlotsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.ProfessionalID == 0 || len(req.Slots) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "professionalId and slots are required",
		})
	}

	starts := make([]time.Time, 0, len(req.Slots))
	for _, raw := range req.Slots {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Slots must be RFC 3339 instants",
				Error:   err.Error(),
			})
		}
		starts = append(starts, start.UTC())
	}

	created, err := scheduler.NewGenerator(db.DB).Generate(req.ProfessionalID, starts)
	if errors.Is(err, scheduler.ErrNothingToGenerate) {
		return c.JSON(fiber.Map{"message": "All slots already exist, nothing to generate"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate slots",
			Error:   err.Error(),
		})
	}

	metrics.AddSlotsGenerated(len(created))
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListAvailability godoc
// @Summary List a professional's slots for a calendar day
// @Description Returns available and reserved slots whose start falls on the given UTC day, ascending by start
// @Tags slots
// @Produce json
// @Param professionalId query int true "Professional ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} models.AvailabilitySlot
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /slots [get]
func ListAvailability(c *fiber.Ctx) error {
	professionalParam := c.Query("professionalId")
	date := c.Query("date")
	if professionalParam == "" || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "professionalId and date are required",
		})
	}
	professionalID, err := strconv.ParseUint(professionalParam, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "professionalId must be numeric",
			Error:   err.Error(),
		})
	}

	slots, err := scheduler.ListDay(db.DB, uint(professionalID), date)
	if errors.Is(err, scheduler.ErrBadDate) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}

	metrics.IncAvailabilityRequest()
	return c.JSON(slots)
}

// DeleteSlot removes an availability slot, but only while it is still
// available. Reserved slots back a confirmed appointment and stay put.
func DeleteSlot(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Slot id must be numeric",
			Error:   err.Error(),
		})
	}

	// Hard delete: a soft-deleted row would keep occupying the
	// (professional_id, start_time) unique index and block regeneration.
	res := db.DB.Unscoped().
		Where("id = ? AND status = ?", id, models.SlotAvailable).
		Delete(&models.AvailabilitySlot{})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to remove slot",
			Error:   res.Error.Error(),
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Slot not found or already reserved",
		})
	}
	return c.JSON(fiber.Map{"message": "Slot removed"})
}
