package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// Create persists the customer together with one unconfirmed booking for
// them. The confirmation step later targets that booking by its own id, so
// intake must never leave a customer without a booking row.
func (s *CustomerService) Create(customer *models.Customer) (*models.Booking, error) {
	customer.FirstName = strings.TrimSpace(customer.FirstName)
	customer.LastName = strings.TrimSpace(customer.LastName)
	customer.Email = strings.TrimSpace(customer.Email)

	if customer.FirstName == "" {
		return nil, fmt.Errorf("%w: first name is required", ErrValidation)
	}
	if customer.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	booking := &models.Booking{
		Status:        models.BookingStatusUnconfirmed,
		ReferenceCode: uuid.New().String(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customer).Error; err != nil {
			return err
		}
		booking.CustomerID = customer.ID
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return booking, nil
}

func (s *CustomerService) GetAll() ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := s.DB.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) GetByID(id uint) (models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, ErrCustomerNotFound
		}
		return models.Customer{}, fmt.Errorf("get customer %d: %w", id, err)
	}
	return customer, nil
}
