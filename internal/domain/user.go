package domain

import "time"

type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Avatar         string    `json:"avatar"`
	AvatarPublicID string    `json:"-"`
	Bio            string    `json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserUpdate carries a partial profile mutation. Nil fields are left
// untouched by the repository.
type UserUpdate struct {
	Name           *string
	Avatar         *string
	AvatarPublicID *string
	Bio            *string
}

// UserSearchResult is one row of a name search, annotated with whether
// the requesting user already follows the matched user.
type UserSearchResult struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	IsFollowing bool   `json:"is_following"`
}
