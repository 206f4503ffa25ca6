package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/salonbook/salon-booking/controllers"
)

// SetupBookingRoutes configures booking and appointment listing routes
func SetupBookingRoutes(app *fiber.App) {
	app.Post("/bookings", controllers.BookAppointment)
	app.Get("/appointments", controllers.GetAllAppointments)
}
