package models

import (
	"time"

	"gorm.io/datatypes"
)

// Room is a bookable unit. Rows are read-only after creation in the
// customer-facing flow; only the admin endpoint inserts them.
type Room struct {
	ID      uint    `gorm:"primaryKey" json:"room_id"`
	Name    string  `gorm:"column:room_name;size:100" json:"room_name"`
	BedSize string  `gorm:"column:bed_size;size:50" json:"bed_size,omitempty"`
	Image   *string `gorm:"column:image;size:512" json:"image"`

	// Free-form amenity list, e.g. ["wifi","minibar"].
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
