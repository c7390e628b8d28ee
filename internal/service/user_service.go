package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"paulgram/internal/database"
	"paulgram/internal/models"
	"paulgram/internal/repository"

	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// UserService handles onboarding and identity-provider lifecycle events.
type UserService struct {
	userRepo repository.UserRepository
}

// OnboardInput carries the onboarding form submission. CallerID is the
// authenticated identity from the session token, which must match ID.
type OnboardInput struct {
	CallerID string
	ID       string
	Name     string
	Username string
	Bio      string
	Image    string
	Email    string
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Onboard validates and upserts the user's profile, setting the onboarded
// flag. The username-taken check is explicit; the database unique constraint
// backs it up against races.
func (s *UserService) Onboard(ctx context.Context, in OnboardInput) (*models.User, error) {
	if in.CallerID != in.ID {
		return nil, models.NewUnauthorizedError("User ID mismatch")
	}
	if len(strings.TrimSpace(in.Name)) < 3 {
		return nil, models.NewValidationError("Name must be at least 3 characters")
	}
	if len(in.Username) < 3 || !usernamePattern.MatchString(in.Username) {
		return nil, models.NewValidationError("Username must be at least 3 characters of letters, digits or underscores")
	}
	if len(in.Bio) > 250 {
		return nil, models.NewValidationError("Bio too long (max 250 characters)")
	}
	if !strings.Contains(in.Email, "@") {
		return nil, models.NewValidationError("Invalid email address")
	}

	existing, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != in.CallerID {
		return nil, models.NewConflictError("Username already taken")
	}

	user, err := s.userRepo.GetByID(ctx, in.CallerID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &models.User{
			ID:        in.CallerID,
			Name:      in.Name,
			Username:  in.Username,
			Email:     in.Email,
			Bio:       in.Bio,
			Image:     in.Image,
			Onboarded: true,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			if database.IsUniqueViolation(err) {
				return nil, models.NewConflictError("Username already taken")
			}
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		user.Name = in.Name
		user.Username = in.Username
		user.Bio = in.Bio
		user.Image = in.Image
		user.Onboarded = true
		if err := s.userRepo.Update(ctx, user); err != nil {
			if database.IsUniqueViolation(err) {
				return nil, models.NewConflictError("Username already taken")
			}
			return nil, err
		}
	}

	return user, nil
}

// GetByID returns the user row for an identity-provider id.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, err
	}
	return user, nil
}

// HandleUserCreated inserts a shell row for a freshly signed-up identity.
// The username defaults to the provider id until onboarding completes.
// Idempotent: an existing row is left untouched.
func (s *UserService) HandleUserCreated(ctx context.Context, id, email, name, image string) error {
	if id == "" {
		return models.NewValidationError("Missing user id in webhook payload")
	}

	if _, err := s.userRepo.GetByID(ctx, id); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user := &models.User{
		ID:       id,
		Name:     strings.TrimSpace(name),
		Username: id,
		Email:    email,
		Image:    image,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			// Concurrent delivery of the same event.
			return nil
		}
		return err
	}
	return nil
}

// HandleUserDeleted removes the row for a deleted identity.
func (s *UserService) HandleUserDeleted(ctx context.Context, id string) error {
	if id == "" {
		return models.NewValidationError("Missing user id in webhook payload")
	}
	return s.userRepo.Delete(ctx, id)
}
