package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShareLink is the public handle on a user's whole collection. At most one
// per user; both the hash and the owner are unique at the store level.
type ShareLink struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Hash      string    `json:"hash" gorm:"uniqueIndex;not null"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (l *ShareLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
