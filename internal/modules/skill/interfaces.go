package skill

import (
	"context"

	"github.com/pretheevi/skillswapserver/internal/domain"
)

type SkillRepo interface {
	Create(ctx context.Context, s *domain.Skill) error
	GetByID(ctx context.Context, id int64) (*domain.Skill, error)
	ListAll(ctx context.Context) ([]domain.SkillWithOwner, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.SkillWithOwner, error)
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id int64) error
}

type MediaRepo interface {
	Create(ctx context.Context, media *domain.SkillMedia) error
	GetBySkillID(ctx context.Context, skillID int64) (*domain.SkillMedia, error)
	Replace(ctx context.Context, media *domain.SkillMedia) error
	DeleteBySkillID(ctx context.Context, skillID int64) error
}

type CommentReader interface {
	CountBySkillID(ctx context.Context, skillID int64) (int64, error)
	ListBySkillID(ctx context.Context, skillID int64) ([]domain.CommentWithAuthor, error)
}
