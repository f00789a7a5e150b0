package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appauth "github.com/lmrivero/chatsurvey/internal/app/auth"
	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/app/models/dto"
	"github.com/lmrivero/chatsurvey/internal/app/repositories"
	"github.com/lmrivero/chatsurvey/internal/pkg/apperrors"
	"github.com/lmrivero/chatsurvey/internal/pkg/auth"
)

// UserService handles user management operations
type UserService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List returns all users, newest first. Admin scope is enforced at the route.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

// Get returns a user by id. The target user owns their own record, so the
// ownership predicate covers the self-or-admin rule.
func (s *UserService) Get(ctx context.Context, actor appauth.Actor, id int64) (*models.User, error) {
	if err := appauth.CanAccessOwned(actor, id); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}

// Create creates a user directly (admin operation; validation matches
// registration).
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	role := models.RoleStudent
	if req.Role != "" {
		role = models.Role(req.Role)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User created by admin")
	return user, nil
}

// Update applies a merge-patch to a user. Callers may update themselves,
// admins may update anyone. Role changes are admin-only.
func (s *UserService) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := appauth.CanAccessOwned(actor, id); err != nil {
		return nil, err
	}

	if req.Role != nil && !actor.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}

	user, err := s.userRepo.Update(ctx, id, req.ToPatch())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", id).Int64("actorID", actor.ID).Msg("User updated")
	return user, nil
}

// Delete removes a user. Admin scope is enforced at the route; the
// self-protection predicate rejects deleting the caller's own account.
func (s *UserService) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	if err := appauth.CheckSelfDeletion(actor, id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", id).Int64("actorID", actor.ID).Msg("User deleted")
	return nil
}
