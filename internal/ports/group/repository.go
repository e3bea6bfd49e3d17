package group

import (
	"context"

	"github.com/8ubble8uddy/yatube-project/internal/core/group"
)

// GroupRepository is the outbound port for group storage.
type GroupRepository interface {
	Create(ctx context.Context, g *group.Group) (*group.Group, error)
	FindByID(ctx context.Context, id string) (*group.Group, error)
	FindBySlug(ctx context.Context, slug string) (*group.Group, error)
	List(ctx context.Context, offset, limit int) ([]*group.Group, int64, error)
}

type GroupDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
