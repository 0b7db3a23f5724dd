package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showpass/showpass/internal/service"
	"github.com/showpass/showpass/models"
)

func TestGitHubWelcome_Success(t *testing.T) {
	resolver := &stubGitHubResolver{
		resolveUserFn: func(_ context.Context, accessToken string) (models.User, error) {
			assert.Equal(t, "gho_token", accessToken)
			return authedUser, nil
		},
	}
	h := newTestHandler(t, &service.Services{GitHub: resolver})

	req := httptest.NewRequest(http.MethodGet, "/github/welcome", nil)
	req.Header.Set("Authorization", "Bearer gho_token")
	rr := httptest.NewRecorder()
	h.githubWelcome(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "alice")
}

func TestGitHubWelcome_NotLinked(t *testing.T) {
	resolver := &stubGitHubResolver{
		resolveUserFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrExternalAccountNotLinked
		},
	}
	h := newTestHandler(t, &service.Services{GitHub: resolver})

	req := httptest.NewRequest(http.MethodGet, "/github/welcome", nil)
	req.Header.Set("Authorization", "Bearer gho_token")
	rr := httptest.NewRecorder()
	h.githubWelcome(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestGitHubWelcome_MissingHeader(t *testing.T) {
	h := newTestHandler(t, &service.Services{GitHub: &stubGitHubResolver{}})

	rr := httptest.NewRecorder()
	h.githubWelcome(rr, httptest.NewRequest(http.MethodGet, "/github/welcome", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
