package service

import (
	"context"
	"errors"

	"github.com/dukerupert/orderflow/internal/auth"
	"github.com/dukerupert/orderflow/internal/domain"
)

type userService struct {
	users domain.UserRepository
}

// NewUserService creates the account service.
func NewUserService(users domain.UserRepository) domain.UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	const op = "user.register"

	personName, err := domain.NewPersonName(name)
	if err != nil {
		return nil, domain.WrapError(err, domain.EVALIDATION, op, domain.ErrorMessage(err))
	}
	emailAddr, err := domain.NewEmailAddress(email)
	if err != nil {
		return nil, domain.WrapError(err, domain.EVALIDATION, op, domain.ErrorMessage(err))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, domain.Errorf(domain.EVALIDATION, op, "password must be at least %d characters", auth.MinPasswordLength)
		}
		return nil, domain.Internal(err, op, "failed to hash password")
	}

	return s.users.Create(ctx, domain.User{
		Name:         personName,
		Email:        emailAddr,
		PasswordHash: hash,
	})
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	const op = "user.authenticate"

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Same error for unknown email and wrong password.
		return nil, domain.Invalid(op, "invalid email or password")
	}
	if err := auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, domain.Invalid(op, "invalid email or password")
	}
	return user, nil
}
