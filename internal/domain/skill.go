package domain

import "time"

type SkillCategory string

const (
	CategoryWeb       SkillCategory = "web"
	CategoryDesign    SkillCategory = "design"
	CategoryData      SkillCategory = "data"
	CategoryMobile    SkillCategory = "mobile"
	CategoryMarketing SkillCategory = "marketing"
	CategoryLanguage  SkillCategory = "language"
)

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryWeb, CategoryDesign, CategoryData, CategoryMobile, CategoryMarketing, CategoryLanguage:
		return true
	}
	return false
}

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelExpert       SkillLevel = "expert"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelExpert:
		return true
	}
	return false
}

type Skill struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	Title       string        `json:"title"`
	Category    SkillCategory `json:"category"`
	Level       SkillLevel    `json:"level"`
	Description string        `json:"description"`
	Rating      float64       `json:"rating"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// SkillWithOwner is a skill row joined with its owner's identity fields.
type SkillWithOwner struct {
	Skill
	OwnerName   string `json:"user_name"`
	OwnerEmail  string `json:"user_email"`
	OwnerAvatar string `json:"user_avatar"`
}
