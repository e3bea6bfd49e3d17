package comment

import (
	"time"

	"github.com/8ubble8uddy/yatube-project/internal/core/post"
	"github.com/8ubble8uddy/yatube-project/internal/core/user"
	"github.com/gofrs/uuid"
)

type Comment struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Text      string    `gorm:"type:text;not null"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null"`
	Author    user.User `gorm:"foreignkey:AuthorID"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Post      post.Post `gorm:"foreignkey:PostID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
