package auth

import (
	"context"
	"errors"

	"github.com/craftcost/craftcost-backend/internal/modules/user"
)

var (
	// ErrEmailTaken reports a registration attempt with an already used email.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials reports a failed login. The same error covers
	// unknown emails and wrong passwords so the two are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service defines the interface for authentication-related business logic.
// Both operations return the account and a signed session token.
type Service interface {
	Register(ctx context.Context, username, email, password string) (*user.User, string, error)
	Login(ctx context.Context, email, password string) (*user.User, string, error)
}
