package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/salonbook/salon-booking/db"
	"github.com/salonbook/salon-booking/models"
	"github.com/salonbook/salon-booking/routes"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(
		&models.Professional{},
		&models.Service{},
		&models.TemplateEntry{},
		&models.AvailabilitySlot{},
		&models.Appointment{},
	))
	db.DB = database

	app := fiber.New()
	routes.SetupProfessionalRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupSlotRoutes(app)
	routes.SetupBookingRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createProfessional(t *testing.T, app *fiber.App, name string) models.Professional {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/professionals/", fiber.Map{"name": name})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[models.Professional](t, resp)
}

func TestProfessionalCRUD(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/professionals/", fiber.Map{"name": ""})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	ana := createProfessional(t, app, "Ana")
	createProfessional(t, app, "Bia")

	resp = doJSON(t, app, fiber.MethodGet, "/professionals/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	listed := decode[[]models.Professional](t, resp)
	require.Len(t, listed, 2)
	assert.Equal(t, "Ana", listed[0].Name) // ordered by name

	resp = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/professionals/%d", ana.ID), fiber.Map{"name": "Ana Paula"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/professionals/%d", ana.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/professionals/9999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestServiceValidation(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/services/", fiber.Map{
		"name": "Haircut", "price": -10, "duration_minutes": 45,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/services/", fiber.Map{
		"name": "Haircut", "price": 50.0, "duration_minutes": 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/services/", fiber.Map{
		"name": "Haircut", "description": "Cut and wash", "price": 50.0, "duration_minutes": 45,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	service := decode[models.Service](t, resp)
	assert.EqualValues(t, 45, service.DurationMinutes)

	resp = doJSON(t, app, fiber.MethodGet, "/services/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	services := decode[[]models.Service](t, resp)
	assert.Len(t, services, 1)
}

func TestGenerateSlotsValidation(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/slots/", fiber.Map{"slots": []string{"2025-07-26T09:00:00Z"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/slots/", fiber.Map{"professionalId": 1, "slots": []string{}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/slots/", fiber.Map{"professionalId": 1, "slots": []string{"26/07/2025 09:00"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGenerateAndListSlots(t *testing.T) {
	app := setupApp(t)
	ana := createProfessional(t, app, "Ana")

	body := fiber.Map{
		"professionalId": ana.ID,
		"slots":          []string{"2025-07-26T09:30:00Z", "2025-07-26T09:00:00Z"},
	}
	resp := doJSON(t, app, fiber.MethodPost, "/slots/", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[[]models.AvailabilitySlot](t, resp)
	assert.Len(t, created, 2)

	// Same batch again: everything already exists.
	resp = doJSON(t, app, fiber.MethodPost, "/slots/", body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/slots/?professionalId=%d&date=2025-07-26", ana.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	slots := decode[[]models.AvailabilitySlot](t, resp)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].StartTime.Before(slots[1].StartTime))

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/slots/?professionalId=%d&date=2025-07-27", ana.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]models.AvailabilitySlot](t, resp))

	resp = doJSON(t, app, fiber.MethodGet, "/slots/?date=2025-07-26", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/slots/?professionalId=%d", ana.ID), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/slots/?professionalId=%d&date=26-07-2025", ana.ID), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBookingFlow(t *testing.T) {
	app := setupApp(t)
	ana := createProfessional(t, app, "Ana")

	resp := doJSON(t, app, fiber.MethodPost, "/services/", fiber.Map{
		"name": "Haircut", "price": 50.0, "duration_minutes": 45,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	service := decode[models.Service](t, resp)

	resp = doJSON(t, app, fiber.MethodPost, "/slots/", fiber.Map{
		"professionalId": ana.ID,
		"slots":          []string{"2025-07-26T13:00:00Z"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	slots := decode[[]models.AvailabilitySlot](t, resp)
	require.Len(t, slots, 1)

	bookingBody := fiber.Map{
		"availabilitySlotId": slots[0].ID,
		"serviceId":          service.ID,
		"clientName":         "Maria",
		"clientPhone":        "11 99999-0000",
		"serviceDuration":    service.DurationMinutes,
	}
	resp = doJSON(t, app, fiber.MethodPost, "/bookings", bookingBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	appointment := decode[models.Appointment](t, resp)
	assert.True(t, appointment.EndTime.Equal(time.Date(2025, 7, 26, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, models.StatusConfirmed, appointment.Status)

	// Losing a race (or double-submitting) reports a conflict.
	resp = doJSON(t, app, fiber.MethodPost, "/bookings", bookingBody)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Incomplete input never reaches the store.
	resp = doJSON(t, app, fiber.MethodPost, "/bookings", fiber.Map{
		"availabilitySlotId": slots[0].ID,
		"serviceId":          service.ID,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// The claimed slot shows up as reserved in the day listing.
	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/slots/?professionalId=%d&date=2025-07-26", ana.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	listed := decode[[]models.AvailabilitySlot](t, resp)
	require.Len(t, listed, 1)
	assert.Equal(t, models.SlotReserved, listed[0].Status)

	resp = doJSON(t, app, fiber.MethodGet, "/appointments", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	appointments := decode[[]models.Appointment](t, resp)
	require.Len(t, appointments, 1)
	assert.Equal(t, "Haircut", appointments[0].Service.Name)
}

func TestDeleteSlotOnlyWhileAvailable(t *testing.T) {
	app := setupApp(t)
	ana := createProfessional(t, app, "Ana")

	resp := doJSON(t, app, fiber.MethodPost, "/slots/", fiber.Map{
		"professionalId": ana.ID,
		"slots":          []string{"2025-07-26T09:00:00Z", "2025-07-26T09:30:00Z"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	slots := decode[[]models.AvailabilitySlot](t, resp)
	require.Len(t, slots, 2)

	require.NoError(t, db.DB.Model(&models.AvailabilitySlot{}).
		Where("id = ?", slots[0].ID).
		Update("status", models.SlotReserved).Error)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/slots/%d", slots[0].ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/slots/%d", slots[1].ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/slots/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestApplyTemplateEndpoint(t *testing.T) {
	app := setupApp(t)
	ana := createProfessional(t, app, "Ana")

	url := fmt.Sprintf("/professionals/%d/template", ana.ID)

	resp := doJSON(t, app, fiber.MethodPut, url, fiber.Map{"template": fiber.Map{}, "weeks": 1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPut, url, fiber.Map{
		"template": map[string][]string{"1": {"09:00", "09:30"}},
		"weeks":    1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[[]models.AvailabilitySlot](t, resp)
	assert.Len(t, created, 2)
	for _, slot := range created {
		assert.Equal(t, time.Monday, slot.StartTime.UTC().Weekday())
	}

	// Re-applying the same template over the same horizon adds nothing.
	resp = doJSON(t, app, fiber.MethodPut, url, fiber.Map{
		"template": map[string][]string{"1": {"09:00", "09:30"}},
		"weeks":    1,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, url, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	entries := decode[[]models.TemplateEntry](t, resp)
	require.Len(t, entries, 2)
	assert.Equal(t, models.Monday, entries[0].DayOfWeek)

	resp = doJSON(t, app, fiber.MethodPut, "/professionals/9999/template", fiber.Map{
		"template": map[string][]string{"1": {"09:00"}},
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
