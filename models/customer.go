package models

import "time"

// Customer is created once during intake and never updated afterwards.
type Customer struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"column:first_name;size:100" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:100" json:"last_name"`
	Email     string `gorm:"column:email;size:255;index" json:"email"`
	Phone     string `gorm:"column:phone;size:32" json:"phone,omitempty"`

	// Preferred UI language picked on the first page of the flow.
	// Informational only; nothing server-side branches on it.
	Language string `gorm:"column:language;size:8" json:"language,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
