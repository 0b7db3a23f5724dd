package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/showpass/showpass/internal/config"
	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/store"
	"github.com/showpass/showpass/models"
)

const defaultGitHubAPIBaseURL = "https://api.github.com"

// githubProfile is the subset of the GitHub /user response the resolver
// cares about.
type githubProfile struct {
	Login string `json:"login"`
	Email string `json:"email"`
}

type githubResolver struct {
	userRepository store.UserRepository
	client         *resty.Client
	logger         *logger.Logger
}

// NewGitHubResolver creates a GitHubResolver that calls the GitHub REST
// API with the user-supplied access token and matches the returned
// profile against local accounts.
func NewGitHubResolver(userRepository store.UserRepository, cfg config.GitHub, logger *logger.Logger) GitHubResolver {
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = defaultGitHubAPIBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/vnd.github+json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &githubResolver{userRepository: userRepository, client: client, logger: logger}
}

// ResolveUser fetches the GitHub profile behind accessToken and maps it
// to a local account: first by login as username, then by the profile
// email. A token GitHub rejects, or a profile with no matching local
// account, yields ErrExternalAccountNotLinked.
func (s *githubResolver) ResolveUser(ctx context.Context, accessToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	var profile githubProfile
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&profile).
		Get("/user")
	if err != nil {
		log.Error().Err(err).Msg("github profile request failed")
		return models.User{}, fmt.Errorf("error occurred during calling github api: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode()).Msg("github rejected access token")
		return models.User{}, ErrExternalAccountNotLinked
	}

	user, err := s.userRepository.FindUserByUsername(ctx, profile.Login)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Error().Err(err).Str("login", profile.Login).Msg("user lookup by login failed")
		return models.User{}, fmt.Errorf("error occurred during finding user by login: %w", err)
	}

	if profile.Email != "" {
		user, err = s.userRepository.FindUserByEmail(ctx, profile.Email)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Err(err).Str("email", profile.Email).Msg("user lookup by email failed")
			return models.User{}, fmt.Errorf("error occurred during finding user by email: %w", err)
		}
	}

	return models.User{}, ErrExternalAccountNotLinked
}
