package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arialabs/aria-backend/internal/models"
	"github.com/arialabs/aria-backend/internal/repository"
)

var (
	ErrKnowledgeTitleRequired   = errors.New("title is required")
	ErrKnowledgeContentRequired = errors.New("content is required")
)

// KnowledgeService handles knowledge base business logic. Entries are
// append-only in this revision.
type KnowledgeService struct {
	knowledgeRepo repository.KnowledgeRepository
}

// NewKnowledgeService creates a new KnowledgeService
func NewKnowledgeService(knowledgeRepo repository.KnowledgeRepository) *KnowledgeService {
	return &KnowledgeService{knowledgeRepo: knowledgeRepo}
}

// CreateKnowledgeEntryInput represents input for creating a knowledge entry
type CreateKnowledgeEntryInput struct {
	UserID   uint64
	Title    string
	Content  string
	Category string
	Tags     []string
}

// Create validates input, applies defaults and persists the entry.
func (s *KnowledgeService) Create(input CreateKnowledgeEntryInput) (*models.KnowledgeEntry, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrKnowledgeTitleRequired
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrKnowledgeContentRequired
	}

	category := input.Category
	if category == "" {
		category = "general"
	}

	entry := &models.KnowledgeEntry{
		UserID:   input.UserID,
		Title:    input.Title,
		Content:  input.Content,
		Category: category,
	}
	entry.SetTagList(input.Tags)

	if err := s.knowledgeRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create knowledge entry: %w", err)
	}

	return entry, nil
}

// List returns the user's knowledge entries, newest first.
func (s *KnowledgeService) List(userID uint64) ([]models.KnowledgeEntry, error) {
	entries, err := s.knowledgeRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge entries: %w", err)
	}
	return entries, nil
}
