package follow

import (
	"time"

	"github.com/8ubble8uddy/yatube-project/internal/core/user"
	"github.com/gofrs/uuid"
)

// Follow is a directed subscription: UserID follows AuthorID.
// The (user, author) pair is unique at the storage layer.
type Follow struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_author"`
	User      user.User `gorm:"foreignkey:UserID"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_author"`
	Author    user.User `gorm:"foreignkey:AuthorID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
