package groupapp

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	groupEntity "github.com/8ubble8uddy/yatube-project/internal/core/group"
)

type fakeGroupRepo struct {
	groups []*groupEntity.Group
}

func (r *fakeGroupRepo) Create(_ context.Context, g *groupEntity.Group) (*groupEntity.Group, error) {
	r.groups = append(r.groups, g)
	return g, nil
}

func (r *fakeGroupRepo) FindByID(_ context.Context, id string) (*groupEntity.Group, error) {
	for _, g := range r.groups {
		if g.ID.String() == id {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroupRepo) FindBySlug(_ context.Context, slug string) (*groupEntity.Group, error) {
	for _, g := range r.groups {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroupRepo) List(_ context.Context, offset, limit int) ([]*groupEntity.Group, int64, error) {
	total := int64(len(r.groups))
	if offset >= len(r.groups) {
		return nil, total, nil
	}
	out := r.groups[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func TestCreateAndGetGroup(t *testing.T) {
	svc := NewGroupService(&fakeGroupRepo{})

	created, err := svc.CreateGroup(context.Background(), "Cats", "cats", "all about cats")
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}

	got, err := svc.GetBySlug(context.Background(), "cats")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != created.ID || got.Title != "Cats" {
		t.Fatalf("unexpected group %+v", got)
	}

	if _, err := svc.GetBySlug(context.Background(), "dogs"); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "not-an-id"); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestListGroups(t *testing.T) {
	svc := NewGroupService(&fakeGroupRepo{})
	for _, slug := range []string{"cats", "dogs", "birds"} {
		if _, err := svc.CreateGroup(context.Background(), slug, slug, ""); err != nil {
			t.Fatalf("CreateGroup %s: %v", slug, err)
		}
	}

	dtos, total, err := svc.ListGroups(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("ListGroups: %v", err)
	}
	if total != 3 || len(dtos) != 1 {
		t.Fatalf("expected total 3 with 1 result, got %d with %d", total, len(dtos))
	}
}
