package domain

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	SkillID   int64     `json:"skill_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentWithAuthor denormalizes the commenter's display fields into the
// row so listing a skill's comments is a single query.
type CommentWithAuthor struct {
	Comment
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
}

// CommentWithSkill is a user's comment joined with the skill it was left on.
type CommentWithSkill struct {
	Comment
	SkillTitle string `json:"skill_title"`
}
