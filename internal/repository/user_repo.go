package repository

import (
	"context"
	"strings"
	"time"

	"github.com/pretheevi/skillswapserver/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

type userModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Email          string    `gorm:"column:email"`
	Password       string    `gorm:"column:password"`
	Avatar         string    `gorm:"column:avatar"`
	AvatarPublicID *string   `gorm:"column:avatar_public_id"`
	Bio            string    `gorm:"column:bio"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var publicID string
	if m.AvatarPublicID != nil {
		publicID = *m.AvatarPublicID
	}
	return &domain.User{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   m.Password,
		Avatar:         m.Avatar,
		AvatarPublicID: publicID,
		Bio:            m.Bio,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := userModel{
		Name:      u.Name,
		Email:     strings.ToLower(strings.TrimSpace(u.Email)),
		Password:  u.PasswordHash,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if u.AvatarPublicID != "" {
		m.AvatarPublicID = &u.AvatarPublicID
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	u.ID = m.ID
	u.Email = m.Email
	u.CreatedAt = m.CreatedAt
	u.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

// Update applies a partial mutation: only non-nil fields of upd are written,
// everything else keeps its stored value.
func (r *UserRepository) Update(ctx context.Context, id int64, upd domain.UserUpdate) error {
	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Avatar != nil {
		fields["avatar"] = *upd.Avatar
	}
	if upd.AvatarPublicID != nil {
		fields["avatar_public_id"] = *upd.AvatarPublicID
	}
	if upd.Bio != nil {
		fields["bio"] = *upd.Bio
	}
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	return r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// ClearAvatar resets the avatar fields only, leaving the rest of the
// profile untouched.
func (r *UserRepository) ClearAvatar(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"avatar":           "",
			"avatar_public_id": nil,
			"updated_at":       time.Now(),
		}).Error
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&userModel{}, "id = ?", id).Error
}

// Search finds users whose name contains the query (case-insensitive),
// excluding the requester, ordered by name, capped at 20 rows. Each row is
// annotated with whether the requester already follows the user; the flag is
// derived from a LEFT JOIN on user_follows, not stored.
func (r *UserRepository) Search(ctx context.Context, query string, requesterID int64) ([]domain.UserSearchResult, error) {
	var rows []domain.UserSearchResult
	err := r.db.WithContext(ctx).
		Table("users AS u").
		Select(`u.id,
			u.name,
			u.avatar,
			CASE WHEN uf.follower_id IS NULL THEN 0 ELSE 1 END AS is_following`).
		Joins(`LEFT JOIN user_follows uf ON uf.following_id = u.id AND uf.follower_id = ?`, requesterID).
		Where("LOWER(u.name) LIKE ? AND u.id != ?", "%"+strings.ToLower(query)+"%", requesterID).
		Order("u.name ASC").
		Limit(20).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
