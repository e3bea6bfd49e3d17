package group

import (
	"time"

	"github.com/gofrs/uuid"
)

// Group is a named category posts may belong to; Slug is its URL key.
type Group struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"not null"`
	Slug        string    `gorm:"unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
