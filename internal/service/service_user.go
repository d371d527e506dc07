package service

import (
	"context"
	"errors"
	"fmt"

	"newsroom/internal/config"
	"newsroom/internal/logger"
	"newsroom/internal/store"
	"newsroom/internal/validators"
	"newsroom/models"
)

// userService is the concrete implementation of UserService.
// Profile edits and deletions are restricted to the account owner by the
// shared AccessPolicy.
type userService struct {
	userRepository store.UserRepository
	userValidator  validators.Validator
	policy         *AccessPolicy
	stamper        *AuditStamper

	// defaultLimit is the page size applied when a listing request does
	// not specify one.
	defaultLimit int

	logger *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, cfg config.Pagination, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		userValidator:  validators.NewUserValidator(),
		policy:         NewAccessPolicy(),
		stamper:        NewAuditStamper(),
		defaultLimit:   cfg.UserLimit,
		logger:         logger,
	}
}

// List returns one page of user accounts in stable id order, together
// with the total account count. Unlike the news listing, a page beyond
// the data is not an error; the caller receives an empty page.
func (s *userService) List(ctx context.Context, page models.PageRequest) (models.UserPage, error) {
	log := logger.FromContext(ctx)

	normalized := models.NormalizePage(page.Page, page.Limit, s.defaultLimit)

	users, err := s.userRepository.ListUsers(ctx, normalized)
	if err != nil {
		log.Err(err).Int("page", normalized.Page).Msg("user listing failed")
		return models.UserPage{}, fmt.Errorf("user listing failed: %w", err)
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user count failed")
		return models.UserPage{}, fmt.Errorf("user count failed: %w", err)
	}

	return models.UserPage{
		Items: users,
		Total: total,
		Page:  normalized.Page,
		Limit: normalized.Limit,
	}, nil
}

// Get returns a single user account or ErrUserNotFound.
func (s *userService) Get(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Int64("user_id", id).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// Update changes the username and email of an existing account.
//
// Only the account owner may edit. A duplicate username or email is
// reported as a field-level validation error.
func (s *userService) Update(ctx context.Context, actor models.User, id int64, input models.UserEditInput) (models.User, error) {
	log := logger.FromContext(ctx)

	target, err := s.Get(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if !s.policy.CanManageUser(actor, target) {
		log.Warn().Int64("actor_id", actor.ID).Int64("user_id", id).Msg("user edit denied")
		return models.User{}, ErrForbidden
	}

	if err := s.userValidator.Validate(ctx, input); err != nil {
		return models.User{}, err
	}

	target.Username = input.Username
	target.Email = input.Email
	s.stamper.StampUserUpdate(&target)

	updated, err := s.userRepository.UpdateUser(ctx, target)
	if err != nil {
		if verr := uniquenessValidationError(err); verr != nil {
			return models.User{}, verr
		}
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Int64("user_id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

// Delete removes an existing account. Only the account owner may delete.
func (s *userService) Delete(ctx context.Context, actor models.User, id int64) error {
	log := logger.FromContext(ctx)

	target, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if !s.policy.CanManageUser(actor, target) {
		log.Warn().Int64("actor_id", actor.ID).Int64("user_id", id).Msg("user delete denied")
		return ErrForbidden
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}

		log.Err(err).Int64("user_id", id).Msg("user delete failed")
		return fmt.Errorf("user delete failed: %w", err)
	}

	return nil
}
