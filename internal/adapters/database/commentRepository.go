package database

import (
	"context"

	"github.com/8ubble8uddy/yatube-project/internal/config"
	"github.com/8ubble8uddy/yatube-project/internal/core/comment"
)

// CommentRepositoryDatabase is the gorm implementation of the comment port.
type CommentRepositoryDatabase struct{}

func NewCommentRepositoryDatabase() *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := config.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) Update(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	err := config.DB.WithContext(ctx).Model(c).Update("text", c.Text).Error
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Where("id = ?", id).Delete(&comment.Comment{}).Error
}

func (repo *CommentRepositoryDatabase) FindByID(ctx context.Context, id string) (*comment.Comment, error) {
	var c comment.Comment
	err := config.DB.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *CommentRepositoryDatabase) ListByPost(ctx context.Context, postID string, offset, limit int) ([]*comment.Comment, int64, error) {
	var total int64
	q := config.DB.WithContext(ctx).Model(&comment.Comment{}).Where("post_id = ?", postID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*comment.Comment
	q = q.Preload("Author").Order("created_at ASC").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
