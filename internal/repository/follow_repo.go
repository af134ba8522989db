package repository

import (
	"context"
	"time"

	"github.com/pretheevi/skillswapserver/internal/domain"

	"gorm.io/gorm"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

type followModel struct {
	FollowerID  int64     `gorm:"column:follower_id"`
	FollowingID int64     `gorm:"column:following_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (followModel) TableName() string { return "user_follows" }

// Create inserts the directed edge. A duplicate pair surfaces as the
// storage engine's unique-constraint error; callers classify it with
// IsUniqueViolation.
func (r *FollowRepository) Create(ctx context.Context, followerID, followingID int64) error {
	m := followModel{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

// Delete removes the edge if present. Deleting a missing edge is not an
// error.
func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&followModel{}).Error
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&followModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&followModel{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&followModel{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ListFollowers returns the users following userID. The is_following flag
// says whether viewerID follows each of them in turn; it comes from a
// self-join on user_follows rather than a per-row query.
func (r *FollowRepository) ListFollowers(ctx context.Context, userID, viewerID int64, limit, offset int) ([]domain.FollowListEntry, error) {
	var rows []domain.FollowListEntry
	err := r.db.WithContext(ctx).
		Table("user_follows AS uf").
		Select(`u.id,
			u.name,
			u.avatar,
			CASE WHEN uf2.follower_id IS NULL THEN 0 ELSE 1 END AS is_following`).
		Joins("JOIN users u ON u.id = uf.follower_id").
		Joins("LEFT JOIN user_follows uf2 ON uf2.follower_id = ? AND uf2.following_id = u.id", viewerID).
		Where("uf.following_id = ?", userID).
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListFollowing returns the users userID follows. From the owner's own
// viewpoint every row is trivially followed.
func (r *FollowRepository) ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]domain.FollowListEntry, error) {
	var rows []domain.FollowListEntry
	err := r.db.WithContext(ctx).
		Table("user_follows AS uf").
		Select("u.id, u.name, u.avatar, 1 AS is_following").
		Joins("JOIN users u ON u.id = uf.following_id").
		Where("uf.follower_id = ?", userID).
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
