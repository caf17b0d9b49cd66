package models

import (
	"strings"
	"time"
)

// KnowledgeEntry is an append-only note in a user's knowledge base. Tags are
// stored as a single comma-joined column so the table stays flat.
type KnowledgeEntry struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"type:varchar(100);not null;default:'general'" json:"category"`
	Tags      string    `gorm:"type:text" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TagList splits the stored tags column. An empty column yields an empty
// slice, never nil, so it serializes as [].
func (e *KnowledgeEntry) TagList() []string {
	if e.Tags == "" {
		return []string{}
	}
	return strings.Split(e.Tags, ",")
}

// SetTagList joins tags into the stored column form.
func (e *KnowledgeEntry) SetTagList(tags []string) {
	e.Tags = strings.Join(tags, ",")
}
