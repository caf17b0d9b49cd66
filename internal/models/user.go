package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Tasks            []Task           `gorm:"foreignKey:UserID" json:"-"`
	KnowledgeEntries []KnowledgeEntry `gorm:"foreignKey:UserID" json:"-"`
	Integrations     []Integration    `gorm:"foreignKey:UserID" json:"-"`
}
