package database

import (
	"context"

	"github.com/8ubble8uddy/yatube-project/internal/config"
	"github.com/8ubble8uddy/yatube-project/internal/core/group"
)

// GroupRepositoryDatabase is the gorm implementation of the group port.
type GroupRepositoryDatabase struct{}

func NewGroupRepositoryDatabase() *GroupRepositoryDatabase {
	return &GroupRepositoryDatabase{}
}

func (repo *GroupRepositoryDatabase) Create(ctx context.Context, g *group.Group) (*group.Group, error) {
	if err := config.DB.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (repo *GroupRepositoryDatabase) FindByID(ctx context.Context, id string) (*group.Group, error) {
	var g group.Group
	if err := config.DB.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) FindBySlug(ctx context.Context, slug string) (*group.Group, error) {
	var g group.Group
	if err := config.DB.WithContext(ctx).Where("slug = ?", slug).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) List(ctx context.Context, offset, limit int) ([]*group.Group, int64, error) {
	var total int64
	if err := config.DB.WithContext(ctx).Model(&group.Group{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var groups []*group.Group
	q := config.DB.WithContext(ctx).Order("title").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&groups).Error; err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}
