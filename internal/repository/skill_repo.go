package repository

import (
	"context"
	"time"

	"github.com/pretheevi/skillswapserver/internal/domain"

	"gorm.io/gorm"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

type skillModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id"`
	Title       string    `gorm:"column:title"`
	Category    string    `gorm:"column:category"`
	Level       string    `gorm:"column:level"`
	Description string    `gorm:"column:description"`
	Rating      float64   `gorm:"column:rating"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (skillModel) TableName() string { return "skills" }

func toDomainSkill(m skillModel) *domain.Skill {
	return &domain.Skill{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Category:    domain.SkillCategory(m.Category),
		Level:       domain.SkillLevel(m.Level),
		Description: m.Description,
		Rating:      m.Rating,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) error {
	m := skillModel{
		UserID:      s.UserID,
		Title:       s.Title,
		Category:    string(s.Category),
		Level:       string(s.Level),
		Description: s.Description,
		Rating:      s.Rating,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	s.ID = m.ID
	s.CreatedAt = m.CreatedAt
	s.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	var m skillModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainSkill(m), nil
}

// skillOwnerRow is the join shape shared by ListAll and ListByUserID.
type skillOwnerRow struct {
	ID          int64
	UserID      int64
	Title       string
	Category    string
	Level       string
	Description string
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	OwnerName   string
	OwnerEmail  string
	OwnerAvatar string
}

func toSkillWithOwner(row skillOwnerRow) domain.SkillWithOwner {
	return domain.SkillWithOwner{
		Skill: domain.Skill{
			ID:          row.ID,
			UserID:      row.UserID,
			Title:       row.Title,
			Category:    domain.SkillCategory(row.Category),
			Level:       domain.SkillLevel(row.Level),
			Description: row.Description,
			Rating:      row.Rating,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		},
		OwnerName:   row.OwnerName,
		OwnerEmail:  row.OwnerEmail,
		OwnerAvatar: row.OwnerAvatar,
	}
}

const skillOwnerSelect = `s.id, s.user_id, s.title, s.category, s.level, s.description, s.rating,
	s.created_at, s.updated_at,
	u.name AS owner_name, u.email AS owner_email, u.avatar AS owner_avatar`

// ListAll returns every skill joined with its owner's identity fields.
func (r *SkillRepository) ListAll(ctx context.Context) ([]domain.SkillWithOwner, error) {
	var rows []skillOwnerRow
	err := r.db.WithContext(ctx).
		Table("skills AS s").
		Select(skillOwnerSelect).
		Joins("JOIN users u ON u.id = s.user_id").
		Order("s.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.SkillWithOwner, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSkillWithOwner(row))
	}
	return out, nil
}

func (r *SkillRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.SkillWithOwner, error) {
	var rows []skillOwnerRow
	err := r.db.WithContext(ctx).
		Table("skills AS s").
		Select(skillOwnerSelect).
		Joins("JOIN users u ON u.id = s.user_id").
		Where("s.user_id = ?", userID).
		Order("s.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.SkillWithOwner, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSkillWithOwner(row))
	}
	return out, nil
}

// Update rewrites the scalar skill fields. Media is handled separately by
// SkillMediaRepository.
func (r *SkillRepository) Update(ctx context.Context, s *domain.Skill) error {
	return r.db.WithContext(ctx).
		Model(&skillModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"title":       s.Title,
			"category":    string(s.Category),
			"level":       string(s.Level),
			"description": s.Description,
			"updated_at":  time.Now(),
		}).Error
}

func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&skillModel{}, "id = ?", id).Error
}
