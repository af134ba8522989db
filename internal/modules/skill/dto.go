package skill

import (
	"io"

	"github.com/pretheevi/skillswapserver/internal/domain"
)

type CreateSkillRequest struct {
	Title       string `form:"title" binding:"required,min=3"`
	Category    string `form:"category" binding:"required"`
	Level       string `form:"level"`
	Description string `form:"description" binding:"required"`
}

type UpdateSkillRequest struct {
	Title       string `form:"title" binding:"required,min=3"`
	Category    string `form:"category" binding:"required"`
	Level       string `form:"level" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// MediaPayload is an attached media file read from a multipart request.
// ContentType is the sniffed MIME type, not the client-declared one.
type MediaPayload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// SkillSummary is the list-view projection: skill + owner identity + current
// media + comment count.
type SkillSummary struct {
	domain.SkillWithOwner
	Media        *domain.SkillMedia `json:"media"`
	CommentCount int64              `json:"comment_count"`
}

// SkillDetail is the detail-view projection, carrying the comment rows too.
type SkillDetail struct {
	domain.Skill
	Media        *domain.SkillMedia         `json:"media"`
	CommentCount int64                      `json:"comment_count"`
	Comments     []domain.CommentWithAuthor `json:"comments"`
}
