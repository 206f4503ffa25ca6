package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/salonbook/salon-booking/controllers"
)

// SetupServiceRoutes configures all service related routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", controllers.CreateService)
	service.Patch("/:id", controllers.UpdateService)
	service.Delete("/:id", controllers.DeleteService)
}
