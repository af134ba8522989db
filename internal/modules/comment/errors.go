package comment

import "errors"

var (
	ErrNotFound  = errors.New("comment not found")
	ErrForbidden = errors.New("not the comment author")
	ErrEmptyText = errors.New("comment text is empty")
)
