package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/bharatha-dev/brainly-server/internal/common"
	"github.com/bharatha-dev/brainly-server/internal/models"
	"github.com/bharatha-dev/brainly-server/internal/utils"
)

// shareHashBytes of randomness per hash; collisions are negligible at this size.
const shareHashBytes = 10

type ShareService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewShareService(db *gorm.DB, logger zerolog.Logger) *ShareService {
	return &ShareService{db: db, logger: logger}
}

// Enable turns on public sharing for the user and returns the hash.
// Idempotent: an existing link is returned as-is. When two concurrent enables
// race past the lookup, the unique index on user_id rejects the loser, which
// then re-reads and returns the winner's hash.
func (s *ShareService) Enable(userID uuid.UUID) (string, error) {
	var existing models.ShareLink
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case err == nil:
		return existing.Hash, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return "", fmt.Errorf("look up share link: %w", err)
	}

	hash, err := utils.GenerateShareHash(shareHashBytes)
	if err != nil {
		return "", fmt.Errorf("generate share hash: %w", err)
	}

	link := models.ShareLink{Hash: hash, UserID: userID}
	if err := s.db.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if rerr := s.db.Where("user_id = ?", userID).First(&existing).Error; rerr == nil {
				return existing.Hash, nil
			}
			return "", fmt.Errorf("re-read share link after conflict: %w", err)
		}
		return "", fmt.Errorf("create share link: %w", err)
	}

	s.logger.Info().Str("userId", userID.String()).Msg("sharing enabled")
	return hash, nil
}

// Disable turns off public sharing. Succeeds whether or not a link existed.
func (s *ShareService) Disable(userID uuid.UUID) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.ShareLink{}).Error; err != nil {
		return fmt.Errorf("delete share link: %w", err)
	}
	return nil
}

// Resolve maps a public hash to the owner's username and full collection,
// newest first. Unknown hashes and dangling owners are both not found.
func (s *ShareService) Resolve(hash string) (string, []models.Content, error) {
	var link models.ShareLink
	err := s.db.Where("hash = ?", hash).First(&link).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", nil, common.E(common.ErrNotFound, "This share link is invalid or has expired")
	case err != nil:
		return "", nil, fmt.Errorf("look up share link: %w", err)
	}

	var user models.User
	err = s.db.First(&user, "id = ?", link.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", nil, common.E(common.ErrNotFound, "This share link is invalid or has expired")
	case err != nil:
		return "", nil, fmt.Errorf("look up share owner: %w", err)
	}

	content := make([]models.Content, 0)
	err = s.db.
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&content).Error
	if err != nil {
		return "", nil, fmt.Errorf("list shared content: %w", err)
	}

	return user.Username, content, nil
}
