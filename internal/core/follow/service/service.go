package followapp

import (
	"context"
	"errors"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/8ubble8uddy/yatube-project/internal/config"
	followEntity "github.com/8ubble8uddy/yatube-project/internal/core/follow"
	userEntity "github.com/8ubble8uddy/yatube-project/internal/core/user"
	followPort "github.com/8ubble8uddy/yatube-project/internal/ports/follow"
	userPort "github.com/8ubble8uddy/yatube-project/internal/ports/user"
)

var (
	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrUserNotFound = errors.New("user not found")
)

// FollowService manages subscription edges. The self-follow guard lives here
// so every caller — web views and the API alike — gets it.
type FollowService struct {
	FollowRepository followPort.FollowRepository
	UserRepository   userPort.UserRepository
}

func NewFollowService(followRepo followPort.FollowRepository, userRepo userPort.UserRepository) *FollowService {
	return &FollowService{
		FollowRepository: followRepo,
		UserRepository:   userRepo,
	}
}

// Follow subscribes userID to the named author. Following an already-followed
// author is a no-op, so the operation is idempotent.
func (s *FollowService) Follow(ctx context.Context, userID, authorUsername string) error {
	author, err := s.findUser(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author.ID.String() == userID {
		config.Logger.Warn("Self-follow rejected", zap.String("userID", userID))
		return ErrSelfFollow
	}

	exists, err := s.FollowRepository.Exists(ctx, userID, author.ID.String())
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	f := &followEntity.Follow{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   uuid.FromStringOrNil(userID),
		AuthorID: author.ID,
	}
	_, err = s.FollowRepository.Create(ctx, f)
	return err
}

// Unfollow removes the edge if present; absence is not an error.
func (s *FollowService) Unfollow(ctx context.Context, userID, authorUsername string) error {
	author, err := s.findUser(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.FollowRepository.Delete(ctx, userID, author.ID.String())
}

func (s *FollowService) IsFollowing(ctx context.Context, userID, authorUsername string) (bool, error) {
	author, err := s.findUser(ctx, authorUsername)
	if err != nil {
		return false, err
	}
	return s.FollowRepository.Exists(ctx, userID, author.ID.String())
}

// ListFollows returns the user's outgoing follows, optionally filtered by a
// substring of the followed author's username.
func (s *FollowService) ListFollows(ctx context.Context, userID, search string, offset, limit int) ([]*followPort.FollowDTO, int64, error) {
	follows, total, err := s.FollowRepository.ListByUser(ctx, userID, search, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*followPort.FollowDTO, 0, len(follows))
	for _, f := range follows {
		dtos = append(dtos, &followPort.FollowDTO{
			ID:     f.ID.String(),
			User:   f.User.Username,
			Author: f.Author.Username,
		})
	}
	return dtos, total, nil
}

func (s *FollowService) findUser(ctx context.Context, username string) (*userEntity.User, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
