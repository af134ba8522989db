package profile

import (
	"io"

	"github.com/pretheevi/skillswapserver/internal/domain"
)

// UpdateProfileRequest is a partial mutation. Pointer fields stay nil when
// the form key is absent, so a submitted empty string still counts as a
// write (clearing the bio is a valid update).
type UpdateProfileRequest struct {
	Name *string `form:"name"`
	Bio  *string `form:"bio"`
}

// AvatarPayload is a new avatar image read from a multipart request.
type AvatarPayload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// Profile is a user's public profile plus follow-graph aggregates.
type Profile struct {
	domain.User
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	// IsFollowing is only meaningful when viewing someone else's profile.
	IsFollowing *bool `json:"is_following,omitempty"`
}
