package comment

import (
	"context"
	"errors"
	"strings"

	"github.com/pretheevi/skillswapserver/internal/domain"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListBySkillID(ctx context.Context, skillID int64) ([]domain.CommentWithAuthor, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.CommentWithSkill, error)
	UpdateText(ctx context.Context, id int64, text string) error
	Delete(ctx context.Context, id int64) error
}

type SkillGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Skill, error)
}

type Service struct {
	comments Repository
	skills   SkillGate
}

func NewService(comments Repository, skills SkillGate) *Service {
	return &Service{comments: comments, skills: skills}
}

// Create attaches a comment to a skill. Ownership is attributed to userID
// and never re-validated afterwards.
func (s *Service) Create(ctx context.Context, userID int64, req CreateCommentRequest) (*domain.Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	if _, err := s.skills.GetByID(ctx, req.SkillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c := &domain.Comment{
		SkillID: req.SkillID,
		UserID:  userID,
		Text:    text,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListBySkill(ctx context.Context, skillID int64) ([]domain.CommentWithAuthor, error) {
	return s.comments.ListBySkillID(ctx, skillID)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.CommentWithSkill, error) {
	return s.comments.ListByUserID(ctx, userID)
}

// UpdateText changes a comment's text. Only the author may edit.
func (s *Service) UpdateText(ctx context.Context, commentID, requesterID int64, req UpdateCommentRequest) error {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return ErrEmptyText
	}

	if _, err := s.authorize(ctx, commentID, requesterID); err != nil {
		return err
	}
	return s.comments.UpdateText(ctx, commentID, text)
}

// Delete removes a comment. Only the author may delete.
func (s *Service) Delete(ctx context.Context, commentID, requesterID int64) error {
	if _, err := s.authorize(ctx, commentID, requesterID); err != nil {
		return err
	}
	return s.comments.Delete(ctx, commentID)
}

func (s *Service) authorize(ctx context.Context, commentID, requesterID int64) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if c.UserID != requesterID {
		return nil, ErrForbidden
	}
	return c, nil
}
