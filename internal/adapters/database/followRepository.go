package database

import (
	"context"

	"github.com/8ubble8uddy/yatube-project/internal/config"
	"github.com/8ubble8uddy/yatube-project/internal/core/follow"
)

// FollowRepositoryDatabase is the gorm implementation of the follow port.
type FollowRepositoryDatabase struct{}

func NewFollowRepositoryDatabase() *FollowRepositoryDatabase {
	return &FollowRepositoryDatabase{}
}

func (repo *FollowRepositoryDatabase) Create(ctx context.Context, f *follow.Follow) (*follow.Follow, error) {
	if err := config.DB.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

func (repo *FollowRepositoryDatabase) Delete(ctx context.Context, userID, authorID string) error {
	return config.DB.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&follow.Follow{}).Error
}

func (repo *FollowRepositoryDatabase) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	var count int64
	err := config.DB.WithContext(ctx).Model(&follow.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FollowRepositoryDatabase) ListByUser(ctx context.Context, userID, search string, offset, limit int) ([]*follow.Follow, int64, error) {
	q := config.DB.WithContext(ctx).Model(&follow.Follow{}).Where("follows.user_id = ?", userID)
	if search != "" {
		q = q.Joins("JOIN users ON users.id = follows.author_id").
			Where("users.username LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var follows []*follow.Follow
	q = q.Preload("User").Preload("Author").Order("follows.created_at DESC").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&follows).Error; err != nil {
		return nil, 0, err
	}
	return follows, total, nil
}
