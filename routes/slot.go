package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/salonbook/salon-booking/controllers"
)

// SetupSlotRoutes configures all availability slot related routes
func SetupSlotRoutes(app *fiber.App) {
	slot := app.Group("/slots")
	slot.Get("/", controllers.ListAvailability)
	slot.Post("/", controllers.GenerateSlots)
	slot.Delete("/:id", controllers.DeleteSlot)
}
