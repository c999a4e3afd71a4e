package services

import (
	"context"
	"errors"

	"storefront/models"
	"storefront/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService defines the interface for account business logic.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, *ServiceError)
	Login(ctx context.Context, email, password string) (*models.User, *ServiceError)
}

type authServiceImpl struct {
	users      repository.UserRepository
	adminEmail string
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService. The account registering with
// adminEmail is seeded with the admin role.
func NewAuthService(users repository.UserRepository, adminEmail string, logger *zap.Logger) AuthService {
	return &authServiceImpl{users: users, adminEmail: adminEmail, logger: logger}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *authServiceImpl) Register(ctx context.Context, name, email, password string) (*models.User, *ServiceError) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("Failed to look up email", zap.Error(err))
		return nil, ErrInternal
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, ErrInternal
	}

	role := models.RoleCustomer
	if s.adminEmail != "" && email == s.adminEmail {
		role = models.RoleAdmin
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create account", zap.String("email", email), zap.Error(err))
		return nil, ErrInternal
	}

	s.logger.Info("Account created", zap.String("email", email), zap.String("role", role))
	return user, nil
}

// Login checks the credentials and returns the matching account.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, *ServiceError) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmail
		}
		s.logger.Error("Failed to look up email", zap.Error(err))
		return nil, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrBadPassword
	}

	return user, nil
}
