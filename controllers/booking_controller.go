package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

type confirmBookingRequest struct {
	ID            uint       `json:"id"`
	RoomID        uint       `json:"room_id"`
	CheckinDate   time.Time  `json:"checkin_date"`
	CheckoutDate  time.Time  `json:"checkout_date"`
	SignatureDate *time.Time `json:"signature_date"`
}

// UpdateBooking (PUT /api/bookings) confirms the booking created at intake.
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	var req confirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.ID == 0 || req.RoomID == 0 || req.CheckinDate.IsZero() || req.CheckoutDate.IsZero() {
		utils.JSONMessage(c, http.StatusBadRequest,
			"ID, room ID, check-in date, and check-out date are required")
		return
	}

	err := ctrl.BookingSvc.Confirm(req.ID, req.RoomID, req.CheckinDate, req.CheckoutDate, req.SignatureDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.JSONMessage(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONMessage(c, http.StatusNotFound, "Booking not found")
		default:
			log.Error().Err(err).Uint("booking_id", req.ID).Msg("update booking failed")
			utils.JSONInternalError(c)
		}
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Booking updated successfully")
}

// GetBookingByID (GET /api/bookings/:id)
func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONMessage(c, http.StatusNotFound, "Booking not found")
			return
		}
		log.Error().Err(err).Uint64("booking_id", id).Msg("get booking failed")
		utils.JSONInternalError(c)
		return
	}
	c.JSON(http.StatusOK, booking)
}
