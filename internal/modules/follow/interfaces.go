package follow

import (
	"context"

	"github.com/pretheevi/skillswapserver/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, followerID, followingID int64) error
	Delete(ctx context.Context, followerID, followingID int64) error
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollowing(ctx context.Context, userID int64) (int64, error)
	ListFollowers(ctx context.Context, userID, viewerID int64, limit, offset int) ([]domain.FollowListEntry, error)
	ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]domain.FollowListEntry, error)
}

type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
