package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/showpass/showpass/internal/config"
	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/store"
	"github.com/showpass/showpass/internal/utils"
	"github.com/showpass/showpass/models"
)

type authService struct {
	userRepository store.UserRepository
	cfg            config.App
	logger         *logger.Logger
}

// NewAuthService creates an AuthService on top of the credential store.
// cfg supplies the token signing key, issuer and lifetime.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{userRepository: userRepository, cfg: cfg, logger: logger}
}

// RegisterUser hashes the password with bcrypt and stores the account
// with the default role. The plaintext password never leaves this
// function.
func (s *authService) RegisterUser(ctx context.Context, body models.UserCreateBody) (models.User, error) {
	log := logger.FromContext(ctx)

	if body.Username == "" || body.Email == "" || body.Password == "" {
		return models.User{}, fmt.Errorf("%w: username, email and password are required", ErrInvalidDataProvided)
	}

	passwordHash, err := utils.HashPassword(body.Password)
	if err != nil {
		log.Error().Err(err).Str("username", body.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("error occurred during hashing password: %w", err)
	}

	user := models.User{
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleBasic,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, err
		}
		log.Error().Err(err).Str("username", body.Username).Msg("user creation failed")
		return models.User{}, fmt.Errorf("error occurred during creating user: %w", err)
	}

	log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Authenticate looks the username up and verifies the password against
// the stored bcrypt hash. Any mismatch, including an unknown username,
// collapses into ErrBadCredentials so callers cannot probe which half
// was wrong.
func (s *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrBadCredentials
		}
		log.Error().Err(err).Str("username", username).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("error occurred during finding user: %w", err)
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		return models.User{}, ErrBadCredentials
	}

	return user, nil
}

func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, user.Username, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("username", user.Username).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// CurrentUser resolves a raw bearer token to the user it was issued
// for. Both validation failures and a subject that no longer exists in
// the store fail closed with ErrTokenInvalidOrExpired.
func (s *authService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenInvalidOrExpired, err)
	}

	user, err := s.userRepository.FindUserByUsername(ctx, token.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrTokenInvalidOrExpired
		}
		logger.FromContext(ctx).Error().Err(err).Str("username", token.Username).Msg("token subject lookup failed")
		return models.User{}, fmt.Errorf("error occurred during finding token subject: %w", err)
	}

	return user, nil
}

// RequireRole is an exact-match check: there is no role hierarchy, a
// premium-only route does not admit basic users and vice versa.
func (s *authService) RequireRole(user models.User, role models.Role) error {
	if user.Role != role {
		return fmt.Errorf("%w: user %q has role %q, route requires %q", ErrRoleNotAllowed, user.Username, user.Role, role)
	}
	return nil
}
