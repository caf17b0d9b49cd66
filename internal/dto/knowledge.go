package dto

import (
	"time"

	"github.com/arialabs/aria-backend/internal/models"
)

// KnowledgeEntryDTO represents a knowledge base entry in API responses
type KnowledgeEntryDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// ToKnowledgeEntryDTO converts a KnowledgeEntry model to KnowledgeEntryDTO
func ToKnowledgeEntryDTO(entry models.KnowledgeEntry) KnowledgeEntryDTO {
	return KnowledgeEntryDTO{
		ID:        entry.ID,
		Title:     entry.Title,
		Content:   entry.Content,
		Category:  entry.Category,
		Tags:      entry.TagList(),
		CreatedAt: entry.CreatedAt,
	}
}

// ToKnowledgeEntryDTOs converts a slice of KnowledgeEntry models
func ToKnowledgeEntryDTOs(entries []models.KnowledgeEntry) []KnowledgeEntryDTO {
	dtos := make([]KnowledgeEntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = ToKnowledgeEntryDTO(entry)
	}
	return dtos
}
