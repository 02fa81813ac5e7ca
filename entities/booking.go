package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const BookingStatusPending = "pending"

type ServiceBooking struct {
	ID           string `gorm:"primaryKey" json:"id"`
	ServiceType  string `json:"service_type"`
	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	// Date and time are stored as-is; the platform does not interpret them.
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
}

func (b *ServiceBooking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}
