package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pquerna/otp/totp"

	"github.com/showpass/showpass/internal/config"
	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/store"
	"github.com/showpass/showpass/models"
)

type mfaService struct {
	userRepository store.UserRepository
	cfg            config.App
	logger         *logger.Logger
}

// NewMFAService creates an MFAService backed by the credential store.
// cfg.TOTPIssuer is the label embedded into provisioning URIs.
func NewMFAService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) MFAService {
	return &mfaService{userRepository: userRepository, cfg: cfg, logger: logger}
}

// Enable mints a fresh TOTP secret for the user and persists it.
// Calling Enable again replaces the previous secret, which invalidates
// any authenticator enrolled against it.
func (s *mfaService) Enable(ctx context.Context, user models.User) (models.MFAEnableResponse, error) {
	log := logger.FromContext(ctx)

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.cfg.TOTPIssuer,
		AccountName: user.Username,
	})
	if err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("totp secret generation failed")
		return models.MFAEnableResponse{}, fmt.Errorf("error occurred during generating totp secret: %w", err)
	}

	if err := s.userRepository.SetTOTPSecret(ctx, user.Username, key.Secret()); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("totp secret persistence failed")
		return models.MFAEnableResponse{}, fmt.Errorf("error occurred during storing totp secret: %w", err)
	}

	log.Info().Str("username", user.Username).Msg("mfa enabled")
	return models.MFAEnableResponse{TOTPURI: key.URL(), Secret: key.Secret()}, nil
}

// Verify checks a one-time code against the account's stored secret.
// Returns ErrMFANotEnabled when no secret is provisioned and
// ErrMFACodeMismatch when the code does not match the current window.
func (s *mfaService) Verify(ctx context.Context, username, code string) error {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return err
		}
		logger.FromContext(ctx).Error().Err(err).Str("username", username).Msg("user lookup failed")
		return fmt.Errorf("error occurred during finding user: %w", err)
	}

	if !user.MFAEnabled() {
		return ErrMFANotEnabled
	}

	if !totp.Validate(code, user.TOTPSecret) {
		return ErrMFACodeMismatch
	}

	return nil
}
