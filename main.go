package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salonbook/salon-booking/cron"
	"github.com/salonbook/salon-booking/db"
	"github.com/salonbook/salon-booking/metrics"
	"github.com/salonbook/salon-booking/middleware"
	"github.com/salonbook/salon-booking/redis"
	"github.com/salonbook/salon-booking/routes"
)

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("APP_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}

func main() {
	initLogger()

	db.Init()
	db.Migrate()
	redis.InitRedis()
	metrics.Register()

	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(middleware.RequestLogger())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Salon Booking API")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.SetupProfessionalRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupSlotRoutes(app)
	routes.SetupBookingRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
