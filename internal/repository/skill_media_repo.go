package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pretheevi/skillswapserver/internal/domain"

	"gorm.io/gorm"
)

type SkillMediaRepository struct {
	db *gorm.DB
}

func NewSkillMediaRepository(db *gorm.DB) *SkillMediaRepository {
	return &SkillMediaRepository{db: db}
}

type skillMediaModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	SkillID   int64     `gorm:"column:skill_id"`
	MediaType string    `gorm:"column:media_type"`
	MediaURL  string    `gorm:"column:media_url"`
	PublicID  *string   `gorm:"column:public_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (skillMediaModel) TableName() string { return "skill_media" }

func toDomainMedia(m skillMediaModel) *domain.SkillMedia {
	var publicID string
	if m.PublicID != nil {
		publicID = *m.PublicID
	}
	return &domain.SkillMedia{
		ID:        m.ID,
		SkillID:   m.SkillID,
		MediaType: domain.MediaType(m.MediaType),
		MediaURL:  m.MediaURL,
		PublicID:  publicID,
		CreatedAt: m.CreatedAt,
	}
}

func toMediaModel(media *domain.SkillMedia) skillMediaModel {
	m := skillMediaModel{
		SkillID:   media.SkillID,
		MediaType: string(media.MediaType),
		MediaURL:  media.MediaURL,
		CreatedAt: time.Now(),
	}
	if media.PublicID != "" {
		publicID := media.PublicID
		m.PublicID = &publicID
	}
	return m
}

func (r *SkillMediaRepository) Create(ctx context.Context, media *domain.SkillMedia) error {
	m := toMediaModel(media)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	media.ID = m.ID
	media.CreatedAt = m.CreatedAt
	return nil
}

// GetBySkillID returns the skill's current media row, or nil when the skill
// has no media attached.
func (r *SkillMediaRepository) GetBySkillID(ctx context.Context, skillID int64) (*domain.SkillMedia, error) {
	var m skillMediaModel
	err := r.db.WithContext(ctx).First(&m, "skill_id = ?", skillID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainMedia(m), nil
}

// Replace upserts the skill's media in place: the existing row is updated
// when present, otherwise a new one is inserted. At most one row stays live
// per skill.
func (r *SkillMediaRepository) Replace(ctx context.Context, media *domain.SkillMedia) error {
	var existing skillMediaModel
	err := r.db.WithContext(ctx).First(&existing, "skill_id = ?", media.SkillID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.Create(ctx, media)
	}
	if err != nil {
		return err
	}

	fields := map[string]any{
		"media_type": string(media.MediaType),
		"media_url":  media.MediaURL,
	}
	if media.PublicID != "" {
		fields["public_id"] = media.PublicID
	} else {
		fields["public_id"] = nil
	}
	if err := r.db.WithContext(ctx).
		Model(&skillMediaModel{}).
		Where("skill_id = ?", media.SkillID).
		Updates(fields).Error; err != nil {
		return err
	}
	media.ID = existing.ID
	media.CreatedAt = existing.CreatedAt
	return nil
}

func (r *SkillMediaRepository) DeleteBySkillID(ctx context.Context, skillID int64) error {
	return r.db.WithContext(ctx).Delete(&skillMediaModel{}, "skill_id = ?", skillID).Error
}
