package repository

import (
	"context"
	"time"

	"github.com/pretheevi/skillswapserver/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

type commentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	SkillID   int64     `gorm:"column:skill_id"`
	UserID    int64     `gorm:"column:user_id"`
	Text      string    `gorm:"column:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (commentModel) TableName() string { return "comments" }

func toDomainComment(m commentModel) *domain.Comment {
	return &domain.Comment{
		ID:        m.ID,
		SkillID:   m.SkillID,
		UserID:    m.UserID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := commentModel{
		SkillID:   c.SkillID,
		UserID:    c.UserID,
		Text:      c.Text,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var m commentModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainComment(m), nil
}

// ListBySkillID joins each comment with the commenter's name and avatar so
// callers render a thread without a second round trip.
func (r *CommentRepository) ListBySkillID(ctx context.Context, skillID int64) ([]domain.CommentWithAuthor, error) {
	var rows []struct {
		commentModel
		UserName   string
		UserAvatar string
	}
	err := r.db.WithContext(ctx).
		Table("comments AS c").
		Select("c.*, u.name AS user_name, u.avatar AS user_avatar").
		Joins("JOIN users u ON u.id = c.user_id").
		Where("c.skill_id = ?", skillID).
		Order("c.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.CommentWithAuthor, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CommentWithAuthor{
			Comment:    *toDomainComment(row.commentModel),
			UserName:   row.UserName,
			UserAvatar: row.UserAvatar,
		})
	}
	return out, nil
}

// ListByUserID returns a user's comments joined with the skill titles they
// were left on.
func (r *CommentRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.CommentWithSkill, error) {
	var rows []struct {
		commentModel
		SkillTitle string
	}
	err := r.db.WithContext(ctx).
		Table("comments AS c").
		Select("c.*, s.title AS skill_title").
		Joins("JOIN skills s ON s.id = c.skill_id").
		Where("c.user_id = ?", userID).
		Order("c.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.CommentWithSkill, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CommentWithSkill{
			Comment:    *toDomainComment(row.commentModel),
			SkillTitle: row.SkillTitle,
		})
	}
	return out, nil
}

func (r *CommentRepository) CountBySkillID(ctx context.Context, skillID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&commentModel{}).
		Where("skill_id = ?", skillID).
		Count(&count).Error
	return count, err
}

func (r *CommentRepository) UpdateText(ctx context.Context, id int64, text string) error {
	return r.db.WithContext(ctx).
		Model(&commentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"text":       text,
			"updated_at": time.Now(),
		}).Error
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&commentModel{}, "id = ?", id).Error
}
