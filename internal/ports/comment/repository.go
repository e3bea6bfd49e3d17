package comment

import (
	"context"

	"github.com/8ubble8uddy/yatube-project/internal/core/comment"
)

// CommentRepository is the outbound port for comment storage. Listings are in
// ascending creation order under a post.
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	Update(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*comment.Comment, error)
	ListByPost(ctx context.Context, postID string, offset, limit int) ([]*comment.Comment, int64, error)
}

type CommentDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	AuthorID  string `json:"author_id"`
	PostID    string `json:"post_id"`
	CreatedAt string `json:"created_at"`
}
