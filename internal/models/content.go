package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentType is the closed set of sources a saved item can come from. Values
// outside the set are rejected when decoding request bodies, so an invalid
// type never reaches the store.
type ContentType string

const (
	TypeYoutube   ContentType = "youtube"
	TypeTwitter   ContentType = "twitter"
	TypeReddit    ContentType = "reddit"
	TypeInstagram ContentType = "instagram"
	TypeLink      ContentType = "link"
	TypeArticle   ContentType = "article"
	TypeFacebook  ContentType = "facebook"
)

var contentTypes = map[ContentType]bool{
	TypeYoutube:   true,
	TypeTwitter:   true,
	TypeReddit:    true,
	TypeInstagram: true,
	TypeLink:      true,
	TypeArticle:   true,
	TypeFacebook:  true,
}

func (t ContentType) Valid() bool {
	return contentTypes[t]
}

func (t *ContentType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ct := ContentType(s)
	if !ct.Valid() {
		return fmt.Errorf("invalid content type %q", s)
	}
	*t = ct
	return nil
}

type Content struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string      `json:"title" gorm:"not null"`
	Link      string      `json:"link" gorm:"not null"`
	Type      ContentType `json:"type" gorm:"not null"`
	UserID    uuid.UUID   `json:"userId" gorm:"type:uuid;index;not null"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
