package user

import (
	"context"
	"errors"
)

// ErrNotFound reports a lookup for a user that does not exist.
var ErrNotFound = errors.New("user not found")

// Repository defines the interface for user data storage.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}
