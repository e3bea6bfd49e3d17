package post

import (
	"time"

	"github.com/8ubble8uddy/yatube-project/internal/core/group"
	"github.com/8ubble8uddy/yatube-project/internal/core/user"
	"github.com/gofrs/uuid"
)

type Post struct {
	ID        uuid.UUID    `gorm:"primary_key;type:char(36)"`
	Text      string       `gorm:"type:text;not null"`
	AuthorID  uuid.UUID    `gorm:"type:char(36);not null;index"`
	Author    user.User    `gorm:"foreignkey:AuthorID"`
	GroupID   *uuid.UUID   `gorm:"type:char(36);index"`
	Group     *group.Group `gorm:"foreignkey:GroupID"`
	Image     string       // path under the media dir, empty when no image
	CreatedAt time.Time    `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}
