package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'User' is an account that can own rooms and take seats in them
 */
type User struct {
	ID           string    `gorm:"primaryKey;size:36;not null"`
	Email        string    `gorm:"size:100;not null;uniqueIndex"`
	Name         string    `gorm:"size:50;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	MemberSince  time.Time `gorm:"autoCreateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
