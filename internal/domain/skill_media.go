package domain

import "time"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

func (t MediaType) Valid() bool {
	return t == MediaImage || t == MediaVideo
}

// SkillMedia is the current media attachment of a skill. The schema allows
// several rows per skill but the service replaces in place, so at most one
// row is ever live.
type SkillMedia struct {
	ID        int64     `json:"id"`
	SkillID   int64     `json:"skill_id"`
	MediaType MediaType `json:"media_type"`
	MediaURL  string    `json:"media_url"`
	PublicID  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
