package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/salonbook/salon-booking/db"
	"github.com/salonbook/salon-booking/models"
	"github.com/salonbook/salon-booking/redis"
)

const servicesCacheKey = "services:all"

// GetAllServices returns all services ordered by name. The catalog is served
// from the redis cache when warm; writes below invalidate it.
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if redis.GetJSON(servicesCacheKey, &services) {
		return c.JSON(services)
	}

	if err := db.DB.Order("name asc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	redis.SetJSON(servicesCacheKey, services, 5*time.Minute)
	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}

func validateService(service *models.Service) string {
	if service.Name == "" {
		return "Name is required"
	}
	if service.Price < 0 {
		return "Price must not be negative"
	}
	if service.DurationMinutes == 0 {
		return "Duration must be a positive number of minutes"
	}
	return ""
}

// CreateService creates a new service
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if msg := validateService(service); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}
	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}
	redis.Invalidate(servicesCacheKey)
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService updates a service
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if msg := validateService(&service); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}
	redis.Invalidate(servicesCacheKey)
	return c.JSON(service)
}

// DeleteService deletes a service
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service",
		})
	}
	redis.Invalidate(servicesCacheKey)
	return c.SendStatus(fiber.StatusNoContent)
}
