package store

import "errors"

var (
	ErrUserExists         = errors.New("Email or Username are already taken")
	ErrInvalidCredentials = errors.New("Invalid identifier or password")
	ErrInvalidCurrentPass = errors.New("The provided current password is invalid")
	ErrSamePassword       = errors.New("Your new password must be different than your current password")
	ErrInvalidCode        = errors.New("Incorrect code provided")
	ErrInvalidToken       = errors.New("Invalid token")
	ErrNotFound           = errors.New("Not Found")
)
