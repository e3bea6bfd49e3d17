package post

import (
	"context"

	"github.com/8ubble8uddy/yatube-project/internal/core/post"
	groupPort "github.com/8ubble8uddy/yatube-project/internal/ports/group"
)

// PostRepository is the outbound port for post storage. Every listing returns
// posts in descending creation order together with the total match count.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	Update(ctx context.Context, p *post.Post) (*post.Post, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*post.Post, error)
	ListAll(ctx context.Context, offset, limit int) ([]*post.Post, int64, error)
	ListByGroup(ctx context.Context, groupID string, offset, limit int) ([]*post.Post, int64, error)
	ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*post.Post, int64, error)
	ListByFollowed(ctx context.Context, userID string, offset, limit int) ([]*post.Post, int64, error)
}

type PostDTO struct {
	ID        string              `json:"id"`
	Text      string              `json:"text"`
	Author    string              `json:"author"`
	AuthorID  string              `json:"author_id"`
	Group     *groupPort.GroupDTO `json:"group,omitempty"`
	Image     string              `json:"image,omitempty"`
	CreatedAt string              `json:"created_at"`
}

// Page is one slice of a feed plus the metadata the views need to render
// pagination controls.
type Page struct {
	Items      []*PostDTO
	Number     int
	TotalPages int
	Total      int64
	HasNext    bool
	HasPrev    bool
	NextPage   int
	PrevPage   int
}
