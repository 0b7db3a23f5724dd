package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showpass/showpass/internal/service"
	"github.com/showpass/showpass/models"
)

func TestWelcomeAllUsers(t *testing.T) {
	h := newTestHandler(t, &service.Services{Auth: &stubAuthService{}})

	req := withUser(httptest.NewRequest(http.MethodGet, "/welcome/all-users", nil), authedUser)
	rr := httptest.NewRecorder()
	h.welcomeAllUsers(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "alice")
}

func TestRequireRole_PremiumAdmitted(t *testing.T) {
	h := newTestHandler(t, &service.Services{Auth: &stubAuthService{}})

	premium := models.User{Username: "vip", Role: models.RolePremium}
	req := withUser(httptest.NewRequest(http.MethodGet, "/welcome/premium-users", nil), premium)
	rr := httptest.NewRecorder()

	h.requireRole(models.RolePremium)(http.HandlerFunc(h.welcomePremiumUsers)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "vip")
}

func TestRequireRole_BasicRejected(t *testing.T) {
	h := newTestHandler(t, &service.Services{Auth: &stubAuthService{}})

	req := withUser(httptest.NewRequest(http.MethodGet, "/welcome/premium-users", nil), authedUser)
	rr := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})
	h.requireRole(models.RolePremium)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireRole_NoUserInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{Auth: &stubAuthService{}})

	rr := httptest.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	})
	h.requireRole(models.RolePremium)(next).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/welcome/premium-users", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
