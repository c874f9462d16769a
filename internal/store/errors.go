package store

import "fmt"

var (
	ErrGameNotFound   = fmt.Errorf("game not found")
	ErrUserNotFound   = fmt.Errorf("user not found")
	ErrUsernameExists = fmt.Errorf("username already exists")
)
