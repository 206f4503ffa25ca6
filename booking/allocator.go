package booking

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/salonbook/salon-booking/models"
)

var (
	// ErrInvalidInput marks client-correctable requests (missing fields,
	// non-positive duration).
	ErrInvalidInput = errors.New("incomplete booking data")
	// ErrSlotUnavailable marks a slot that does not exist or was already
	// reserved, including the losing side of a booking race.
	ErrSlotUnavailable = errors.New("slot not found or already reserved")
)

// Request carries the client's slot choice and contact details.
type Request struct {
	AvailabilitySlotID uint   `json:"availabilitySlotId"`
	ServiceID          uint   `json:"serviceId"`
	ClientName         string `json:"clientName"`
	ClientPhone        string `json:"clientPhone"`
	ServiceDuration    uint   `json:"serviceDuration"` // minutes
}

// Allocator claims availability slots and records the appointments they
// produce.
type Allocator struct {
	db *gorm.DB
}

func NewAllocator(db *gorm.DB) *Allocator {
	return &Allocator{db: db}
}

// Book transitions the slot from available to reserved and creates the
// appointment, both inside one transaction so the records can never diverge.
// The conditional status update is the concurrency gate: of N concurrent
// attempts on the same slot, exactly one sees RowsAffected == 1; the rest get
// ErrSlotUnavailable. No retries are attempted.
func (a *Allocator) Book(req Request) (*models.Appointment, error) {
	if req.AvailabilitySlotID == 0 || req.ServiceID == 0 ||
		req.ClientName == "" || req.ClientPhone == "" || req.ServiceDuration == 0 {
		return nil, ErrInvalidInput
	}

	var appointment models.Appointment
	err := a.db.Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&models.AvailabilitySlot{}).
			Where("id = ? AND status = ?", req.AvailabilitySlotID, models.SlotAvailable).
			Update("status", models.SlotReserved)
		if claim.Error != nil {
			return fmt.Errorf("claim slot: %w", claim.Error)
		}
		if claim.RowsAffected == 0 {
			return ErrSlotUnavailable
		}

		var slot models.AvailabilitySlot
		if err := tx.First(&slot, req.AvailabilitySlotID).Error; err != nil {
			return fmt.Errorf("load claimed slot: %w", err)
		}

		start := slot.StartTime.UTC()
		appointment = models.Appointment{
			ServiceID:      req.ServiceID,
			ProfessionalID: slot.ProfessionalID,
			StartTime:      start,
			EndTime:        start.Add(time.Duration(req.ServiceDuration) * time.Minute),
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			Status:         models.StatusConfirmed,
		}
		if err := tx.Create(&appointment).Error; err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}
