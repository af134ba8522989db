package follow

import (
	"context"
	"errors"

	"github.com/pretheevi/skillswapserver/internal/domain"
	"github.com/pretheevi/skillswapserver/internal/repository"

	"gorm.io/gorm"
)

const defaultPageSize = 20

// Service manages the directed follow graph.
type Service struct {
	follows Repository
	users   UserGate
}

func NewService(follows Repository, users UserGate) *Service {
	return &Service{follows: follows, users: users}
}

// Follow records followerID → followingID. Self-follows are rejected before
// anything reaches storage; a duplicate pair is reported as
// ErrAlreadyFollowing so callers can respond idempotently.
func (s *Service) Follow(ctx context.Context, followerID, followingID int64) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	if _, err := s.users.GetByID(ctx, followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.follows.Create(ctx, followerID, followingID); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

// Unfollow removes the edge. Unfollowing someone you never followed is a
// no-op, not an error.
func (s *Service) Unfollow(ctx context.Context, followerID, followingID int64) error {
	return s.follows.Delete(ctx, followerID, followingID)
}

func (s *Service) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return s.follows.Exists(ctx, followerID, followingID)
}

func (s *Service) Counts(ctx context.Context, userID int64) (*domain.FollowCounts, error) {
	followers, err := s.follows.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.FollowCounts{Followers: followers, Following: following}, nil
}

// Followers lists who follows userID, annotated with whether viewerID
// follows each of them.
func (s *Service) Followers(ctx context.Context, userID, viewerID int64, limit, offset int) ([]domain.FollowListEntry, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.follows.ListFollowers(ctx, userID, viewerID, limit, offset)
}

// Following lists who userID follows.
func (s *Service) Following(ctx context.Context, userID int64, limit, offset int) ([]domain.FollowListEntry, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.follows.ListFollowing(ctx, userID, limit, offset)
}
