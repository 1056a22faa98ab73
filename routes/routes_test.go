package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Room{}, &models.Booking{}))

	customerController := controllers.NewCustomerController(services.NewCustomerService(db))
	roomController := controllers.NewRoomController(services.NewRoomService(db), false)
	bookingController := controllers.NewBookingController(services.NewBookingService(db))

	return SetupRouter(customerController, roomController, bookingController)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateCustomer_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"lastName": "Doe", "email": "jane@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users", gin.H{"firstName": "Jane", "lastName": "Doe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing written.
	w = doJSON(t, r, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateRoom_MissingName(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{"image": "/uploads/x.jpg"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRoomByID_MissAnswersNull(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/rooms/42", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

// Full intake-to-confirmation pass, the way the pages drive it.
func TestBookingFlow(t *testing.T) {
	r := newTestRouter(t)

	// Step 1: customer info page submits the intake form.
	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@x.com",
		"language":  "en",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID        uint `json:"id"`
		BookingID uint `json:"booking_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.NotZero(t, created.BookingID)

	// Room is provisioned out of band.
	w = doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{"room_name": "101", "image": nil})
	require.Equal(t, http.StatusCreated, w.Code)

	var room struct {
		RoomID uint `json:"room_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.NotZero(t, room.RoomID)

	// Step 2: room selection page lists rooms.
	w = doJSON(t, r, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rooms []models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].Name)

	// Step 3: confirmation page loads room and customer independently.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/rooms/%d", room.RoomID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Step 4: submit the booking update.
	w = doJSON(t, r, http.MethodPut, "/api/bookings", gin.H{
		"id":             created.BookingID,
		"room_id":        room.RoomID,
		"checkin_date":   "2024-01-10T00:00:00Z",
		"checkout_date":  "2024-01-12T00:00:00Z",
		"signature_date": "2024-01-09T15:30:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Booking updated successfully"}`, w.Body.String())

	// Read-back reflects the confirmation.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/bookings/%d", created.BookingID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, booking.RoomID)
	assert.Equal(t, room.RoomID, *booking.RoomID)
}

func TestUpdateBooking_Failures(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{"room_name": "101"})
	require.Equal(t, http.StatusCreated, w.Code)

	var room struct {
		RoomID uint `json:"room_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))

	// Missing required fields.
	w = doJSON(t, r, http.MethodPut, "/api/bookings", gin.H{
		"id":      1,
		"room_id": room.RoomID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown booking id.
	w = doJSON(t, r, http.MethodPut, "/api/bookings", gin.H{
		"id":            999,
		"room_id":       room.RoomID,
		"checkin_date":  "2024-01-10T00:00:00Z",
		"checkout_date": "2024-01-12T00:00:00Z",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Booking not found"}`, w.Body.String())
}

func timeRFC3339(hours int) string {
	return time.Now().UTC().Add(time.Duration(hours) * time.Hour).Format(time.RFC3339)
}

func TestGetRooms_AvailableQueryParam(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"firstName": "Jane", "email": "jane@x.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		BookingID uint `json:"booking_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPost, "/api/rooms", gin.H{"room_name": "101"})
	require.Equal(t, http.StatusCreated, w.Code)
	var room struct {
		RoomID uint `json:"room_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))

	// Confirm a stay covering today.
	yesterday := timeRFC3339(-24)
	tomorrow := timeRFC3339(24)
	w = doJSON(t, r, http.MethodPut, "/api/bookings", gin.H{
		"id":            created.BookingID,
		"room_id":       room.RoomID,
		"checkin_date":  yesterday,
		"checkout_date": tomorrow,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Unfiltered listing keeps the room.
	w = doJSON(t, r, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 1)

	// Filtered listing hides it.
	w = doJSON(t, r, http.MethodGet, "/api/rooms?available=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rooms = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Empty(t, rooms)
}
