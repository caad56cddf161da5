package util

import "errors"

var (
	ErrUserNotFound       = errors.New("User not found")
	ErrPostNotFound       = errors.New("Post not found")
	ErrModuleNotFound     = errors.New("Module not found")
	ErrResourceNotFound   = errors.New("Resource not found")
	ErrDuplicateUser      = errors.New("User with this email or username already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)
