package skill

import "errors"

var (
	ErrNotFound         = errors.New("skill not found")
	ErrForbidden        = errors.New("not the skill owner")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidLevel     = errors.New("invalid level")
	ErrUnsupportedMedia = errors.New("unsupported media type")
)
