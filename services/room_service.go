package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		return fmt.Errorf("%w: room name is required", ErrValidation)
	}
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

// GetAll lists every room. With onlyAvailable set, rooms that have a
// confirmed booking whose range covers today are excluded; the default
// contract is the unfiltered listing.
func (s *RoomService) GetAll(onlyAvailable bool) ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	q := s.DB
	if onlyAvailable {
		now := time.Now().UTC()
		booked := s.DB.Model(&models.Booking{}).
			Select("room_id").
			Where("status = ?", models.BookingStatusConfirmed).
			Where("room_id IS NOT NULL").
			Where("checkin_date <= ? AND checkout_date > ?", now, now)
		q = q.Where("id NOT IN (?)", booked)
	}
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("get room %d: %w", id, err)
	}
	return room, nil
}
