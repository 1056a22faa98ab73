package models

import "time"

type BookingStatus string

const (
	BookingStatusUnconfirmed BookingStatus = "unconfirmed"
	BookingStatusConfirmed   BookingStatus = "confirmed"
)

// Booking links a customer to a room and a date range. A row is created in
// the unconfirmed state together with its customer during intake, and the
// confirmation step fills in room and dates. Confirmed is terminal: there is
// no cancel or check-out transition in this contract.
type Booking struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CustomerID uint `gorm:"column:customer_id;index" json:"customer_id"`

	// Nil until the booking is confirmed.
	RoomID        *uint      `gorm:"column:room_id;index" json:"room_id"`
	CheckinDate   *time.Time `gorm:"column:checkin_date" json:"checkin_date"`
	CheckoutDate  *time.Time `gorm:"column:checkout_date" json:"checkout_date"`
	SignatureDate *time.Time `gorm:"column:signature_date" json:"signature_date"`

	Status        BookingStatus `gorm:"column:status;size:32" json:"status"`
	ReferenceCode string        `gorm:"column:reference_code;size:64" json:"reference_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room     *Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}
