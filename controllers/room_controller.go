package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService

	// FilterByDefault applies the availability filter to every listing
	// request, not just those asking for it. Off unless
	// ROOM_AVAILABILITY_FILTER is set.
	FilterByDefault bool
}

func NewRoomController(svc *services.RoomService, filterByDefault bool) *RoomController {
	return &RoomController{RoomSvc: svc, FilterByDefault: filterByDefault}
}

type createRoomRequest struct {
	RoomName  string          `json:"room_name"`
	BedSize   string          `json:"bed_size"`
	Image     *string         `json:"image"`
	Amenities json.RawMessage `json:"amenities"`
}

// GetRooms (GET /api/rooms)
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	onlyAvailable := ctrl.FilterByDefault || c.Query("available") == "true"

	rooms, err := ctrl.RoomSvc.GetAll(onlyAvailable)
	if err != nil {
		log.Error().Err(err).Msg("list rooms failed")
		utils.JSONInternalError(c)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomByID (GET /api/rooms/:id). A miss answers 200 with a null body
// rather than 404; the confirmation page probes the result either way.
func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	room, err := ctrl.RoomSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Error().Err(err).Uint64("room_id", id).Msg("get room failed")
		utils.JSONInternalError(c)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom (POST /api/rooms)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	room := models.Room{
		Name:    req.RoomName,
		BedSize: req.BedSize,
		Image:   req.Image,
	}
	if len(req.Amenities) > 0 {
		room.Amenities = datatypes.JSON(req.Amenities)
	}

	if err := ctrl.RoomSvc.Create(&room); err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.JSONMessage(c, http.StatusBadRequest, "Room name is required")
			return
		}
		log.Error().Err(err).Msg("create room failed")
		utils.JSONInternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"room_id": room.ID})
}
