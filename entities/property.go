package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	Type        string  `json:"type"`
	IsRent      bool    `json:"is_rent"`
}

// Clients may supply their own listing id; only fill one in when absent.
func (p *Property) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
