package profile

import "errors"

var (
	ErrNotFound = errors.New("user not found")
	ErrNoAvatar = errors.New("no avatar to delete")
)
