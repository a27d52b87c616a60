package domain

import (
	"context"

	"go-candidate-backend/pkg/auth"
)

// User is a registered account. Users are immutable after registration.
type User struct {
	UUID         string `json:"uuid" bson:"uuid"`
	FirstName    string `json:"firstName" bson:"first_name"`
	LastName     string `json:"lastName" bson:"last_name"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password"`
}

type UserRegistration struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,maxbytes=72"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserRepository interface {
	// FindByEmail returns (nil, nil) when no user has the email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, req UserRegistration) error
	// Login returns a signed access token.
	Login(ctx context.Context, req UserLogin) (string, error)
	// GetCurrentUser resolves the user named by a verified token's email claim.
	GetCurrentUser(ctx context.Context, email string) (*User, error)
}

// PasswordHasher is satisfied by auth.BcryptHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer is satisfied by auth.TokenService.
type TokenIssuer interface {
	Issue(id auth.Identity) (string, error)
}
