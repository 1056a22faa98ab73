package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Confirm writes room, dates and signature onto the booking and moves it to
// the confirmed state. Last write wins if two confirmations race on the same
// id. Overlapping confirmed bookings on one room are deliberately not
// rejected; the availability filter on room listing is the only place
// overlap is considered.
func (s *BookingService) Confirm(id, roomID uint, checkIn, checkOut time.Time, signature *time.Time) error {
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check-out date must be after check-in date", ErrValidation)
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: room %d does not exist", ErrValidation, roomID)
		}
		return fmt.Errorf("check room %d: %w", roomID, err)
	}

	res := s.DB.Model(&models.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
		"room_id":        roomID,
		"checkin_date":   checkIn,
		"checkout_date":  checkOut,
		"signature_date": signature,
		"status":         models.BookingStatusConfirmed,
	})
	if res.Error != nil {
		return fmt.Errorf("update booking %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Room").Preload("Customer").First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("get booking %d: %w", id, err)
	}
	return booking, nil
}
