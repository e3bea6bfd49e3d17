package commentapp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	commentEntity "github.com/8ubble8uddy/yatube-project/internal/core/comment"
	commentPort "github.com/8ubble8uddy/yatube-project/internal/ports/comment"
	postPort "github.com/8ubble8uddy/yatube-project/internal/ports/post"
)

var (
	ErrTextRequired    = errors.New("comment text is required")
	ErrCommentNotFound = errors.New("comment not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrNotAuthor       = errors.New("actor is not the comment author")
)

// CommentService attaches comments to posts. Author and target post are
// always stamped from the session and URL, never from submitted data.
type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
	}
}

func (s *CommentService) AddComment(ctx context.Context, postID, authorID, text string) (*commentPort.CommentDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, err
	}

	c := &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     text,
		AuthorID: aid,
		PostID:   p.ID,
	}

	created, err := s.CommentRepository.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, created.ID.String())
}

// ListByPost returns a post's comments in creation order. limit <= 0 means
// all of them.
func (s *CommentService) ListByPost(ctx context.Context, postID string, offset, limit int) ([]*commentPort.CommentDTO, int64, error) {
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrPostNotFound
		}
		return nil, 0, err
	}

	comments, total, err := s.CommentRepository.ListByPost(ctx, postID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	return dtos, total, nil
}

func (s *CommentService) GetComment(ctx context.Context, id string) (*commentPort.CommentDTO, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (s *CommentService) UpdateComment(ctx context.Context, id, actorID, text string) (*commentPort.CommentDTO, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.AuthorID.String() != actorID {
		return nil, ErrNotAuthor
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	c.Text = text
	if _, err := s.CommentRepository.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

func (s *CommentService) DeleteComment(ctx context.Context, id, actorID string) error {
	c, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if c.AuthorID.String() != actorID {
		return ErrNotAuthor
	}
	return s.CommentRepository.Delete(ctx, id)
}

func (s *CommentService) find(ctx context.Context, id string) (*commentEntity.Comment, error) {
	c, err := s.CommentRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CommentService) reload(ctx context.Context, id string) (*commentPort.CommentDTO, error) {
	c, err := s.CommentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func toDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	return &commentPort.CommentDTO{
		ID:        c.ID.String(),
		Text:      c.Text,
		Author:    c.Author.Username,
		AuthorID:  c.AuthorID.String(),
		PostID:    c.PostID.String(),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
