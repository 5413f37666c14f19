// Package service contains the application's business logic.
package service

import (
	"context"

	"devconnector/internal/gravatar"
	"devconnector/internal/models"
	"devconnector/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, credential checks and account lookups.
type UserService struct {
	userRepo repository.UserRepository
}

// RegisterInput carries an already-validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates an account with a bcrypt-hashed password and a Gravatar
// URL derived from the email.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("email", "Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Avatar:   gravatar.URL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewFieldNotFoundError("email", "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, &models.AppError{
			Code:    models.CodeValidation,
			Field:   "password",
			Message: "Password incorrect",
		}
	}
	return user, nil
}

// GetByID returns the account for the given id.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
