package services

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/bharatha-dev/brainly-server/internal/common"
	"github.com/bharatha-dev/brainly-server/internal/models"
)

type ContentService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewContentService(db *gorm.DB, logger zerolog.Logger) *ContentService {
	return &ContentService{db: db, logger: logger}
}

// Create validates and persists a new saved item for the owner.
func (s *ContentService) Create(userID uuid.UUID, title, link string, ctype models.ContentType) (*models.Content, error) {
	fields := common.FieldErrors{}
	if title == "" {
		fields["title"] = "Title cannot be empty"
	}
	if !validLink(link) {
		fields["link"] = "Please provide a valid URL"
	}
	if !ctype.Valid() {
		fields["type"] = "Invalid content type"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	content := models.Content{
		Title:  title,
		Link:   link,
		Type:   ctype,
		UserID: userID,
	}
	if err := s.db.Create(&content).Error; err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return &content, nil
}

// List returns all of the owner's items, newest first.
func (s *ContentService) List(userID uuid.UUID) ([]models.Content, error) {
	content := make([]models.Content, 0)
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&content).Error
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return content, nil
}

// Delete removes an item by id, scoped to the owner. A missing item and
// someone else's item both come back as not found, so existence never leaks
// to non-owners.
func (s *ContentService) Delete(userID uuid.UUID, contentID string) error {
	id, err := uuid.Parse(contentID)
	if err != nil {
		return common.E(common.ErrValidation, "Invalid content ID format")
	}

	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Content{})
	if res.Error != nil {
		return fmt.Errorf("delete content: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.E(common.ErrNotFound, "Content not found or you lack permission to delete it")
	}
	return nil
}

func validLink(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
