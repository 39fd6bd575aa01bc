package service

import (
	"errors"

	"harvestpro/entities"
)

var (
	ErrUsernameTaken  = errors.New("username already taken")
	ErrBadCredentials = errors.New("bad credentials")
	ErrInactive       = errors.New("account deactivated")
)

type AuthService interface {
	Register(username, email, fullName, password, role string) (*entities.User, error)
	// Login verifies the password and returns the user plus a signed token.
	Login(username, password string) (*entities.User, string, error)
}
