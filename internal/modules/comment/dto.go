package comment

type CreateCommentRequest struct {
	SkillID int64  `json:"skill_id" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
