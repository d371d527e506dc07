package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"newsroom/internal/config"
	"newsroom/internal/logger"
	"newsroom/internal/store"
	"newsroom/internal/utils"
	"newsroom/internal/validators"
	"newsroom/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// userValidator checks registration and login payloads before any
	// storage interaction.
	userValidator validators.Validator

	// stamper fills the timestamps of newly registered accounts.
	stamper *AuditStamper

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		userValidator:  validators.NewUserValidator(),
		stamper:        NewAuditStamper(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new enabled user account.
//
// The plaintext password is hashed with bcrypt before storage and never
// persisted. A duplicate email or username is reported as a field-level
// validation error, the same way a malformed payload is.
func (a *authService) Register(ctx context.Context, input models.RegisterInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.userValidator.Validate(ctx, input); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.PlainPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("failed to hash password")
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Enabled:      true,
	}
	a.stamper.StampUserCreate(&user)

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if verr := uniquenessValidationError(err); verr != nil {
			return models.User{}, verr
		}

		log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates a user by email and password and issues a token.
//
// Returns:
//   - ErrUserNotFound when no account exists for the email.
//   - ErrInvalidCredentials when the password does not match or the
//     account is disabled.
func (a *authService) Login(ctx context.Context, input models.LoginInput) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.userValidator.Validate(ctx, input); err != nil {
		return models.Token{}, err
	}

	found, err := a.userRepository.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Token{}, ErrUserNotFound
		}

		log.Err(err).Str("email", input.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !found.Enabled {
		log.Warn().Int64("user_id", found.ID).Msg("login attempt on disabled account")
		return models.Token{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(input.PlainPassword)); err != nil {
		log.Warn().Int64("user_id", found.ID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.CreateToken(ctx, found)
}

// CreateToken issues a signed JWT carrying the user's username.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateToken(user.Username, a.tokenIssuer, a.tokenSignKey, a.tokenDuration)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return token, nil
}

// ParseToken verifies a signed JWT and returns its decoded form.
//
// Returns ErrTokenIsExpired for expired tokens and ErrUnauthorized for any
// other verification failure, including an issuer mismatch.
func (a *authService) ParseToken(ctx context.Context, signedToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseToken(signedToken, a.tokenSignKey)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}

		log.Warn().Err(err).Msg("token verification failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if a.tokenIssuer != "" && token.Claims.Issuer != a.tokenIssuer {
		log.Warn().Str("issuer", token.Claims.Issuer).Msg("token issuer mismatch")
		return models.Token{}, ErrUnauthorized
	}

	return token, nil
}

// ResolveUser loads the full account referenced by a verified token.
// A token naming an unknown user returns ErrUnauthorized.
func (a *authService) ResolveUser(ctx context.Context, token models.Token) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetUserByUsername(ctx, token.Username())
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUnauthorized
		}

		log.Err(err).Str("username", token.Username()).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user, nil
}

// uniquenessValidationError converts a storage-level unique constraint
// failure into the field-level validation error shown to API clients, or
// returns nil when err is unrelated.
func uniquenessValidationError(err error) error {
	verr := validators.NewValidationError()
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		verr.Add(validators.FieldEmail, "This value is already used.")
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		verr.Add(validators.FieldUsername, "This value is already used.")
	default:
		return nil
	}

	return verr
}
