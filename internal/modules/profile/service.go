package profile

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/pretheevi/skillswapserver/internal/domain"
	"github.com/pretheevi/skillswapserver/internal/storage"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, upd domain.UserUpdate) error
	ClearAvatar(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, requesterID int64) ([]domain.UserSearchResult, error)
}

type FollowGate interface {
	Counts(ctx context.Context, userID int64) (*domain.FollowCounts, error)
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
}

type Service struct {
	users   UserRepository
	follows FollowGate
	store   storage.Store
}

func NewService(users UserRepository, follows FollowGate, store storage.Store) *Service {
	return &Service{users: users, follows: follows, store: store}
}

// Get returns the user's own profile with follow counts.
func (s *Service) Get(ctx context.Context, userID int64) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	counts, err := s.follows.Counts(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:           *user,
		FollowerCount:  counts.Followers,
		FollowingCount: counts.Following,
	}, nil
}

// GetByID returns someone else's profile, annotated with whether the viewer
// follows them.
func (s *Service) GetByID(ctx context.Context, userID, viewerID int64) (*Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	isFollowing, err := s.follows.IsFollowing(ctx, viewerID, userID)
	if err != nil {
		return nil, err
	}
	p.IsFollowing = &isFollowing
	return p, nil
}

// Update applies a partial profile edit. When a new avatar is attached, the
// new object is stored first; the old avatar object is deleted best-effort
// after the row update succeeds. If the row update fails, the freshly
// stored object is removed again.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateProfileRequest, avatar *AvatarPayload) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Presence, not non-emptiness, decides what is written: a submitted
	// empty bio clears it, an absent field stays untouched. A name cannot
	// be blanked out.
	upd := domain.UserUpdate{}
	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			upd.Name = &name
		}
	}
	if req.Bio != nil {
		bio := strings.TrimSpace(*req.Bio)
		upd.Bio = &bio
	}

	var newObj *storage.StoredObject
	if avatar != nil {
		newObj, err = s.store.Upload(ctx, avatar.Reader, avatar.Filename, avatar.ContentType)
		if err != nil {
			return nil, err
		}
		upd.Avatar = &newObj.URL
		upd.AvatarPublicID = &newObj.PublicID
	}

	if err := s.users.Update(ctx, userID, upd); err != nil {
		if newObj != nil {
			if delErr := s.store.Delete(ctx, newObj.PublicID); delErr != nil {
				log.Printf("profile: failed to clean up stored avatar %s: %v", newObj.PublicID, delErr)
			}
		}
		return nil, err
	}

	if newObj != nil && user.AvatarPublicID != "" {
		if err := s.store.Delete(ctx, user.AvatarPublicID); err != nil {
			log.Printf("profile: failed to delete old avatar %s: %v", user.AvatarPublicID, err)
		}
	}

	return s.Get(ctx, userID)
}

// DeleteAvatar removes the avatar object (best effort) and clears the
// avatar fields, leaving the rest of the profile alone.
func (s *Service) DeleteAvatar(ctx context.Context, userID int64) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if user.Avatar == "" {
		return ErrNoAvatar
	}

	if user.AvatarPublicID != "" {
		if err := s.store.Delete(ctx, user.AvatarPublicID); err != nil {
			log.Printf("profile: failed to delete avatar object %s: %v", user.AvatarPublicID, err)
		}
	}

	return s.users.ClearAvatar(ctx, userID)
}

// Search finds users by name for the requesting user. An empty query
// returns an empty result rather than everybody.
func (s *Service) Search(ctx context.Context, query string, requesterID int64) ([]domain.UserSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.UserSearchResult{}, nil
	}
	return s.users.Search(ctx, query, requesterID)
}
