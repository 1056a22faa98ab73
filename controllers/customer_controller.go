package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// The intake form sends camelCase fields; rows come back snake_case.
type createCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Language  string `json:"language"`
}

// GetCustomers (GET /api/users)
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("list customers failed")
		utils.JSONInternalError(c)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// CreateCustomer (POST /api/users) creates the customer plus their
// unconfirmed booking and returns both ids so the flow can thread them
// through the next pages.
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	customer := models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Language:  req.Language,
	}

	booking, err := ctrl.CustomerSvc.Create(&customer)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.JSONMessage(c, http.StatusBadRequest, "Name and email are required")
			return
		}
		log.Error().Err(err).Msg("create customer failed")
		utils.JSONInternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         customer.ID,
		"booking_id": booking.ID,
	})
}

// GetCustomerByID (GET /api/users/:id)
func (ctrl *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	customer, err := ctrl.CustomerSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.JSONMessage(c, http.StatusNotFound, "Customer not found")
			return
		}
		log.Error().Err(err).Uint64("customer_id", id).Msg("get customer failed")
		utils.JSONInternalError(c)
		return
	}
	c.JSON(http.StatusOK, customer)
}
