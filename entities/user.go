package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account on the platform. The raw password is never
// stored; HashedPassword holds the bcrypt digest and never leaves the server.
type User struct {
	ID             string `gorm:"type:text;primaryKey" json:"id"`
	Username       string `gorm:"unique;not null" json:"username"`
	HashedPassword string `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New().String()
	return
}
