package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/salonbook/salon-booking/controllers"
)

// SetupProfessionalRoutes configures all professional related routes
func SetupProfessionalRoutes(app *fiber.App) {
	professional := app.Group("/professionals")
	professional.Get("/", controllers.GetAllProfessionals)
	professional.Post("/", controllers.CreateProfessional)
	professional.Patch("/:id", controllers.UpdateProfessional)
	professional.Delete("/:id", controllers.DeleteProfessional)
	professional.Post("/:id/photo", controllers.UploadProfessionalPhoto)
	professional.Get("/:id/template", controllers.GetTemplate)
	professional.Put("/:id/template", controllers.ApplyTemplate)
}
