package usecase

import (
	"context"
	"errors"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/auth"
	"go-candidate-backend/pkg/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	tokens   domain.TokenIssuer
	secLog   *security.SecurityLogger
}

func NewAuthUsecase(userRepo domain.UserRepository, hasher domain.PasswordHasher, tokens domain.TokenIssuer, secLog *security.SecurityLogger) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		secLog:   secLog,
	}
}

func (u *authUsecase) Register(ctx context.Context, req domain.UserRegistration) error {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		u.secLog.LogRegistrationConflict(ctx, req.Email)
		return apperror.Conflict(domain.MsgEmailAlreadyExists)
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return apperror.Validation(domain.MsgValidationFailed, []string{"Password: At most 72 bytes"})
		}
		return apperror.Internal(err)
	}

	user := &domain.User{
		UUID:         uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return err
	}

	u.secLog.LogUserRegistered(ctx, user.Email)
	return nil
}

func (u *authUsecase) Login(ctx context.Context, req domain.UserLogin) (string, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	// unknown email and wrong password are indistinguishable to the caller
	if user == nil || !u.hasher.Verify(req.Password, user.PasswordHash) {
		u.secLog.LogLoginFailed(ctx, req.Email, "invalid_credentials")
		return "", apperror.BadRequest(domain.MsgIncorrectEmailPassword)
	}

	token, err := u.tokens.Issue(auth.Identity{UserID: user.UUID, Email: user.Email})
	if err != nil {
		return "", apperror.Internal(err)
	}

	u.secLog.LogLoginSuccess(ctx, user.Email)
	return token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized(domain.MsgInvalidCredentials)
	}
	return user, nil
}
