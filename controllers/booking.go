package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/salonbook/salon-booking/booking"
	"github.com/salonbook/salon-booking/db"
	"github.com/salonbook/salon-booking/metrics"
	"github.com/salonbook/salon-booking/models"
	"github.com/salonbook/salon-booking/utils"
)

// BookAppointment godoc
// @Summary Book an availability slot
// @Description Claims the slot and creates the appointment; at most one of any concurrent attempts on the same slot succeeds
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body booking.Request true "Booking request"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /bookings [post]
func BookAppointment(c *fiber.Ctx) error {
	var req booking.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, err := booking.NewAllocator(db.DB).Book(req)
	switch {
	case errors.Is(err, booking.ErrInvalidInput):
		metrics.IncBooking("invalid")
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Incomplete booking data",
			Error:   err.Error(),
		})
	case errors.Is(err, booking.ErrSlotUnavailable):
		metrics.IncBooking("conflict")
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This slot has already been reserved",
			Error:   err.Error(),
		})
	case err != nil:
		metrics.IncBooking("error")
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	metrics.IncBooking("confirmed")
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAllAppointments godoc
// @Summary List appointments
// @Description Returns appointments with their service, most recent start first
// @Tags bookings
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [get]
func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	err := db.DB.Preload("Service").
		Order("start_time desc").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}
