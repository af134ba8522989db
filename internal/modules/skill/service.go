package skill

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/pretheevi/skillswapserver/internal/domain"
	"github.com/pretheevi/skillswapserver/internal/storage"

	"gorm.io/gorm"
)

// Service composes skills with their media and comment counts into read
// projections, and owns the mutation paths including media side effects.
type Service struct {
	skills   SkillRepo
	media    MediaRepo
	comments CommentReader
	store    storage.Store
}

func NewService(skills SkillRepo, media MediaRepo, comments CommentReader, store storage.Store) *Service {
	return &Service{skills: skills, media: media, comments: comments, store: store}
}

// ListAll returns every skill with owner identity, media and comment count.
// Media and counts are fetched per skill; fine at the expected volume but a
// scaling limit once listings grow.
func (s *Service) ListAll(ctx context.Context) ([]SkillSummary, error) {
	rows, err := s.skills.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, rows)
}

// ListByUser is ListAll filtered to one owner.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]SkillSummary, error) {
	rows, err := s.skills.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, rows)
}

func (s *Service) decorate(ctx context.Context, rows []domain.SkillWithOwner) ([]SkillSummary, error) {
	out := make([]SkillSummary, 0, len(rows))
	for _, row := range rows {
		media, err := s.media.GetBySkillID(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		count, err := s.comments.CountBySkillID(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, SkillSummary{
			SkillWithOwner: row,
			Media:          media,
			CommentCount:   count,
		})
	}
	return out, nil
}

// GetDetail returns one skill with its media, comment count and the comment
// rows themselves.
func (s *Service) GetDetail(ctx context.Context, skillID int64) (*SkillDetail, error) {
	sk, err := s.skills.GetByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	media, err := s.media.GetBySkillID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	count, err := s.comments.CountBySkillID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListBySkillID(ctx, skillID)
	if err != nil {
		return nil, err
	}

	return &SkillDetail{
		Skill:        *sk,
		Media:        media,
		CommentCount: count,
		Comments:     comments,
	}, nil
}

// Create validates the enums, inserts the skill and stores the attached
// media, if any. When the media row insert fails after the object was
// stored, the object is deleted again so nothing is orphaned.
func (s *Service) Create(ctx context.Context, ownerID int64, req CreateSkillRequest, payload *MediaPayload) (int64, error) {
	category := domain.SkillCategory(req.Category)
	if !category.Valid() {
		return 0, ErrInvalidCategory
	}
	level := domain.SkillLevel(req.Level)
	if req.Level == "" {
		level = domain.LevelBeginner
	}
	if !level.Valid() {
		return 0, ErrInvalidLevel
	}

	var mediaType domain.MediaType
	if payload != nil {
		var err error
		mediaType, err = mediaTypeFor(payload.ContentType)
		if err != nil {
			return 0, err
		}
	}

	sk := &domain.Skill{
		UserID:      ownerID,
		Title:       req.Title,
		Category:    category,
		Level:       level,
		Description: req.Description,
	}
	if err := s.skills.Create(ctx, sk); err != nil {
		return 0, err
	}

	if payload != nil {
		obj, err := s.store.Upload(ctx, payload.Reader, payload.Filename, payload.ContentType)
		if err != nil {
			return 0, err
		}
		media := &domain.SkillMedia{
			SkillID:   sk.ID,
			MediaType: mediaType,
			MediaURL:  obj.URL,
			PublicID:  obj.PublicID,
		}
		if err := s.media.Create(ctx, media); err != nil {
			// The object is already durable; remove it so it does not orphan.
			if delErr := s.store.Delete(ctx, obj.PublicID); delErr != nil {
				log.Printf("skill: failed to clean up stored media %s: %v", obj.PublicID, delErr)
			}
			return 0, err
		}
	}

	return sk.ID, nil
}

// Update rewrites the scalar fields and replaces the media only when a new
// payload is attached. The new object is stored before the old one is
// touched: the row update comes next, and only then is the previous object
// deleted (best effort). A failed row update deletes the new object as
// compensation, keeping the old media intact.
func (s *Service) Update(ctx context.Context, skillID, requesterID int64, req UpdateSkillRequest, payload *MediaPayload) error {
	sk, err := s.authorize(ctx, skillID, requesterID)
	if err != nil {
		return err
	}

	category := domain.SkillCategory(req.Category)
	if !category.Valid() {
		return ErrInvalidCategory
	}
	level := domain.SkillLevel(req.Level)
	if !level.Valid() {
		return ErrInvalidLevel
	}

	var mediaType domain.MediaType
	if payload != nil {
		mediaType, err = mediaTypeFor(payload.ContentType)
		if err != nil {
			return err
		}
	}

	sk.Title = req.Title
	sk.Category = category
	sk.Level = level
	sk.Description = req.Description
	if err := s.skills.Update(ctx, sk); err != nil {
		return err
	}

	if payload == nil {
		return nil
	}

	old, err := s.media.GetBySkillID(ctx, skillID)
	if err != nil {
		return err
	}

	obj, err := s.store.Upload(ctx, payload.Reader, payload.Filename, payload.ContentType)
	if err != nil {
		return err
	}

	media := &domain.SkillMedia{
		SkillID:   skillID,
		MediaType: mediaType,
		MediaURL:  obj.URL,
		PublicID:  obj.PublicID,
	}
	if err := s.media.Replace(ctx, media); err != nil {
		if delErr := s.store.Delete(ctx, obj.PublicID); delErr != nil {
			log.Printf("skill: failed to clean up stored media %s: %v", obj.PublicID, delErr)
		}
		return err
	}

	if old != nil && old.PublicID != "" {
		if err := s.store.Delete(ctx, old.PublicID); err != nil {
			log.Printf("skill: failed to delete replaced media %s: %v", old.PublicID, err)
		}
	}
	return nil
}

// Delete removes the skill after an ownership check. The external media
// object is deleted best-effort first; the row delete cascades to media and
// comments.
func (s *Service) Delete(ctx context.Context, skillID, requesterID int64) error {
	if _, err := s.authorize(ctx, skillID, requesterID); err != nil {
		return err
	}

	media, err := s.media.GetBySkillID(ctx, skillID)
	if err != nil {
		return err
	}
	if media != nil && media.PublicID != "" {
		if err := s.store.Delete(ctx, media.PublicID); err != nil {
			log.Printf("skill: failed to delete media object %s: %v", media.PublicID, err)
		}
	}

	return s.skills.Delete(ctx, skillID)
}

// authorize is the ownership guard shared by the mutating operations.
func (s *Service) authorize(ctx context.Context, skillID, requesterID int64) (*domain.Skill, error) {
	sk, err := s.skills.GetByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sk.UserID != requesterID {
		return nil, ErrForbidden
	}
	return sk, nil
}

func mediaTypeFor(contentType string) (domain.MediaType, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return domain.MediaImage, nil
	case strings.HasPrefix(contentType, "video/"):
		return domain.MediaVideo, nil
	default:
		return "", ErrUnsupportedMedia
	}
}
