package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/8ubble8uddy/yatube-project/internal/config"
	"github.com/8ubble8uddy/yatube-project/internal/core/post"
)

// PostRepositoryDatabase is the gorm implementation of the post port. Every
// listing preloads Author and Group and orders by creation time descending,
// the canonical feed order.
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	// Update via a map so a cleared group actually writes NULL.
	err := config.DB.WithContext(ctx).Model(p).
		Updates(map[string]interface{}{
			"text":     p.Text,
			"group_id": p.GroupID,
			"image":    p.Image,
		}).Error
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{}).Error
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	err := config.DB.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) ListAll(ctx context.Context, offset, limit int) ([]*post.Post, int64, error) {
	return repo.list(config.DB.WithContext(ctx).Model(&post.Post{}), offset, limit)
}

func (repo *PostRepositoryDatabase) ListByGroup(ctx context.Context, groupID string, offset, limit int) ([]*post.Post, int64, error) {
	q := config.DB.WithContext(ctx).Model(&post.Post{}).Where("group_id = ?", groupID)
	return repo.list(q, offset, limit)
}

func (repo *PostRepositoryDatabase) ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*post.Post, int64, error) {
	q := config.DB.WithContext(ctx).Model(&post.Post{}).Where("author_id = ?", authorID)
	return repo.list(q, offset, limit)
}

func (repo *PostRepositoryDatabase) ListByFollowed(ctx context.Context, userID string, offset, limit int) ([]*post.Post, int64, error) {
	sub := config.DB.Table("follows").Select("author_id").Where("user_id = ?", userID)
	q := config.DB.WithContext(ctx).Model(&post.Post{}).Where("author_id IN (?)", sub)
	return repo.list(q, offset, limit)
}

func (repo *PostRepositoryDatabase) list(q *gorm.DB, offset, limit int) ([]*post.Post, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*post.Post
	q = q.Preload("Author").Preload("Group").Order("created_at DESC").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
