package controllers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/salonbook/salon-booking/db"
	"github.com/salonbook/salon-booking/models"
	"github.com/salonbook/salon-booking/utils"
)

// GetAllProfessionals returns all professionals ordered by name
func GetAllProfessionals(c *fiber.Ctx) error {
	var professionals []models.Professional
	if err := db.DB.Order("name asc").Find(&professionals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get professionals",
		})
	}
	return c.JSON(professionals)
}

// CreateProfessional creates a new professional
func CreateProfessional(c *fiber.Ctx) error {
	professional := new(models.Professional)
	if err := c.BodyParser(professional); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if professional.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if err := db.DB.Create(professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create professional",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(professional)
}

// UpdateProfessional updates an existing professional
func UpdateProfessional(c *fiber.Ctx) error {
	id := c.Params("id")
	var professional models.Professional
	if err := db.DB.First(&professional, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional not found",
		})
	}
	if err := c.BodyParser(&professional); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if professional.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if err := db.DB.Save(&professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update professional",
		})
	}
	return c.JSON(professional)
}

// DeleteProfessional deletes a professional by ID
func DeleteProfessional(c *fiber.Ctx) error {
	id := c.Params("id")
	var professional models.Professional
	if err := db.DB.First(&professional, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional not found",
		})
	}
	if err := db.DB.Delete(&professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete professional",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadProfessionalPhoto stores a profile photo on Cloudinary and saves the
// secure URL on the professional.
func UploadProfessionalPhoto(c *fiber.Ctx) error {
	id := c.Params("id")
	var professional models.Professional
	if err := db.DB.First(&professional, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional not found",
		})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A photo file is required",
		})
	}

	tmpPath := filepath.Join(os.TempDir(), file.Filename)
	if err := c.SaveFile(file, tmpPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to store uploaded file",
			Error:   err.Error(),
		})
	}
	defer os.Remove(tmpPath)

	url, err := utils.UploadToCloudinary(tmpPath, fmt.Sprintf("professional-%d", professional.ID), "professionals")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
	}

	professional.PhotoURL = &url
	if err := db.DB.Save(&professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save photo reference",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"photo_url": url})
}
