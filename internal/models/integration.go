package models

import (
	"time"
)

// Integration is an external-service connection owned by a user. Config is an
// opaque JSON document; the store never interprets it.
type Integration struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `gorm:"type:varchar(100);not null" json:"type"`
	Config    string    `gorm:"type:text;not null;default:'{}'" json:"-"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
