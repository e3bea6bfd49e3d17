package follow

import (
	"context"

	"github.com/8ubble8uddy/yatube-project/internal/core/follow"
)

// FollowRepository is the outbound port for follow edges.
type FollowRepository interface {
	Create(ctx context.Context, f *follow.Follow) (*follow.Follow, error)
	// Delete removes the (user, author) edge; deleting a missing edge is not
	// an error.
	Delete(ctx context.Context, userID, authorID string) error
	Exists(ctx context.Context, userID, authorID string) (bool, error)
	// ListByUser returns the user's outgoing follows, optionally filtered by a
	// substring match on the followed author's username.
	ListByUser(ctx context.Context, userID, search string, offset, limit int) ([]*follow.Follow, int64, error)
}

type FollowDTO struct {
	ID     string `json:"id"`
	User   string `json:"user"`
	Author string `json:"author"`
}
