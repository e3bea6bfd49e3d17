package groupapp

import (
	"context"
	"errors"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	groupEntity "github.com/8ubble8uddy/yatube-project/internal/core/group"
	groupPort "github.com/8ubble8uddy/yatube-project/internal/ports/group"
)

var ErrGroupNotFound = errors.New("group not found")

type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

func (s *GroupService) CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error) {
	g := &groupEntity.Group{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	created, err := s.GroupRepository.Create(ctx, g)
	if err != nil {
		return nil, err
	}
	return ToDTO(created), nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return ToDTO(g), nil
}

func (s *GroupService) GetByID(ctx context.Context, id string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return ToDTO(g), nil
}

func (s *GroupService) ListGroups(ctx context.Context, offset, limit int) ([]*groupPort.GroupDTO, int64, error) {
	groups, total, err := s.GroupRepository.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, ToDTO(g))
	}
	return dtos, total, nil
}

func ToDTO(g *groupEntity.Group) *groupPort.GroupDTO {
	return &groupPort.GroupDTO{
		ID:          g.ID.String(),
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}
