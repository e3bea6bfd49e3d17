package postapp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/8ubble8uddy/yatube-project/internal/config"
	postEntity "github.com/8ubble8uddy/yatube-project/internal/core/post"
	groupPort "github.com/8ubble8uddy/yatube-project/internal/ports/group"
	postPort "github.com/8ubble8uddy/yatube-project/internal/ports/post"
	userPort "github.com/8ubble8uddy/yatube-project/internal/ports/user"
)

// PageSize is the number of posts per feed page.
const PageSize = 10

var (
	ErrTextRequired   = errors.New("post text is required")
	ErrPostNotFound   = errors.New("post not found")
	ErrNotAuthor      = errors.New("actor is not the post author")
	ErrGroupNotFound  = errors.New("group not found")
	ErrAuthorNotFound = errors.New("author not found")
)

// PostService owns post mutations and every feed variant.
type PostService struct {
	PostRepository  postPort.PostRepository
	GroupRepository groupPort.GroupRepository
	UserRepository  userPort.UserRepository
}

func NewPostService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
) *PostService {
	return &PostService{
		PostRepository:  postRepo,
		GroupRepository: groupRepo,
		UserRepository:  userRepo,
	}
}

// CreatePost stores a new post. The author always comes from the session
// identity of the caller; any author supplied in request data is ignored
// upstream and never reaches this service.
func (s *PostService) CreatePost(ctx context.Context, text, authorID string, groupID *string, image string) (*postPort.PostDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, ErrAuthorNotFound
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     text,
		AuthorID: aid,
		Image:    image,
	}

	gid, err := s.resolveGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	p.GroupID = gid

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		config.Logger.Error("Failed to create post", zap.String("authorID", authorID), zap.Error(err))
		return nil, err
	}

	return s.reload(ctx, created.ID.String())
}

// UpdatePost replaces text, group and (when a new upload is given) image.
// Only the author may edit; everyone else gets ErrNotAuthor and no mutation.
func (s *PostService) UpdatePost(ctx context.Context, postID, actorID, text string, groupID *string, image string) (*postPort.PostDTO, error) {
	p, err := s.find(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID.String() != actorID {
		config.Logger.Warn("Edit attempt by non-author",
			zap.String("postID", postID), zap.String("actorID", actorID))
		return nil, ErrNotAuthor
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	gid, err := s.resolveGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	p.Text = text
	p.GroupID = gid
	p.Group = nil
	if image != "" {
		p.Image = image
	}

	if _, err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.reload(ctx, postID)
}

func (s *PostService) DeletePost(ctx context.Context, postID, actorID string) error {
	p, err := s.find(ctx, postID)
	if err != nil {
		return err
	}
	if p.AuthorID.String() != actorID {
		return ErrNotAuthor
	}
	return s.PostRepository.Delete(ctx, postID)
}

func (s *PostService) GetPost(ctx context.Context, postID string) (*postPort.PostDTO, error) {
	p, err := s.find(ctx, postID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// GetPostByAuthor reads a post addressed as (author username, post id); a
// mismatched username is indistinguishable from a missing post.
func (s *PostService) GetPostByAuthor(ctx context.Context, username, postID string) (*postPort.PostDTO, error) {
	p, err := s.find(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.Author.Username != username {
		return nil, ErrPostNotFound
	}
	return toDTO(p), nil
}

// ListPosts is the offset/limit listing behind the API.
func (s *PostService) ListPosts(ctx context.Context, offset, limit int) ([]*postPort.PostDTO, int64, error) {
	posts, total, err := s.PostRepository.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return toDTOs(posts), total, nil
}

// Feed is the global feed, one page of ten.
func (s *PostService) Feed(ctx context.Context, page int) (*postPort.Page, error) {
	return s.paged(page, func(offset, limit int) ([]*postEntity.Post, int64, error) {
		return s.PostRepository.ListAll(ctx, offset, limit)
	})
}

func (s *PostService) GroupFeed(ctx context.Context, slug string, page int) (*groupPort.GroupDTO, *postPort.Page, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrGroupNotFound
		}
		return nil, nil, err
	}

	pg, err := s.paged(page, func(offset, limit int) ([]*postEntity.Post, int64, error) {
		return s.PostRepository.ListByGroup(ctx, g.ID.String(), offset, limit)
	})
	if err != nil {
		return nil, nil, err
	}

	dto := &groupPort.GroupDTO{
		ID:          g.ID.String(),
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
	return dto, pg, nil
}

func (s *PostService) ProfileFeed(ctx context.Context, username string, page int) (*userPort.UserDTO, *postPort.Page, error) {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrAuthorNotFound
		}
		return nil, nil, err
	}

	pg, err := s.paged(page, func(offset, limit int) ([]*postEntity.Post, int64, error) {
		return s.PostRepository.ListByAuthor(ctx, author.ID.String(), offset, limit)
	})
	if err != nil {
		return nil, nil, err
	}

	dto := &userPort.UserDTO{
		ID:        author.ID.String(),
		Username:  author.Username,
		FirstName: author.FirstName,
		LastName:  author.LastName,
	}
	return dto, pg, nil
}

// FollowFeed lists posts by the authors the user follows.
func (s *PostService) FollowFeed(ctx context.Context, userID string, page int) (*postPort.Page, error) {
	return s.paged(page, func(offset, limit int) ([]*postEntity.Post, int64, error) {
		return s.PostRepository.ListByFollowed(ctx, userID, offset, limit)
	})
}

type listFunc func(offset, limit int) ([]*postEntity.Post, int64, error)

// paged fetches one page of ten and clamps out-of-range page numbers to the
// last non-empty page.
func (s *PostService) paged(page int, list listFunc) (*postPort.Page, error) {
	if page < 1 {
		page = 1
	}

	posts, total, err := list((page-1)*PageSize, PageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if page > totalPages && totalPages > 0 {
		page = totalPages
		if posts, total, err = list((page-1)*PageSize, PageSize); err != nil {
			return nil, err
		}
	}

	return &postPort.Page{
		Items:      toDTOs(posts),
		Number:     page,
		TotalPages: totalPages,
		Total:      total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		NextPage:   page + 1,
		PrevPage:   page - 1,
	}, nil
}

func (s *PostService) find(ctx context.Context, postID string) (*postEntity.Post, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// resolveGroup validates an optional group reference. nil or empty means no
// group.
func (s *PostService) resolveGroup(ctx context.Context, groupID *string) (*uuid.UUID, error) {
	if groupID == nil || *groupID == "" {
		return nil, nil
	}
	g, err := s.GroupRepository.FindByID(ctx, *groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	gid := g.ID
	return &gid, nil
}

func (s *PostService) reload(ctx context.Context, postID string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:        p.ID.String(),
		Text:      p.Text,
		Author:    p.Author.Username,
		AuthorID:  p.AuthorID.String(),
		Image:     p.Image,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.Group != nil {
		dto.Group = &groupPort.GroupDTO{
			ID:          p.Group.ID.String(),
			Title:       p.Group.Title,
			Slug:        p.Group.Slug,
			Description: p.Group.Description,
		}
	}
	return dto
}

func toDTOs(posts []*postEntity.Post) []*postPort.PostDTO {
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toDTO(p))
	}
	return dtos
}
