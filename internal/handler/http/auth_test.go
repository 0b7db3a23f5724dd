package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showpass/showpass/internal/service"
	"github.com/showpass/showpass/internal/store"
	"github.com/showpass/showpass/models"
)

func TestRegister_Success(t *testing.T) {
	auth := &stubAuthService{
		registerUserFn: func(_ context.Context, body models.UserCreateBody) (models.User, error) {
			return models.User{UserID: 1, Username: body.Username, Email: body.Email, Role: models.RoleBasic}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Auth: auth})

	req := httptest.NewRequest(http.MethodPost, "/register/user",
		strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"pw123"}`))
	rr := httptest.NewRecorder()
	h.register(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestRegister_Duplicate(t *testing.T) {
	auth := &stubAuthService{
		registerUserFn: func(_ context.Context, _ models.UserCreateBody) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	h := newTestHandler(t, &service.Services{Auth: auth})

	req := httptest.NewRequest(http.MethodPost, "/register/user",
		strings.NewReader(`{"username":"alice","email":"a@b.c","password":"pw"}`))
	rr := httptest.NewRecorder()
	h.register(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{Auth: &stubAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/register/user", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func tokenRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestToken_Success(t *testing.T) {
	auth := &stubAuthService{
		authenticateFn: func(_ context.Context, username, password string) (models.User, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "pw123", password)
			return authedUser, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Auth: auth})

	rr := httptest.NewRecorder()
	h.token(rr, tokenRequest(url.Values{"username": {"alice"}, "password": {"pw123"}}))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestToken_BadCredentials(t *testing.T) {
	auth := &stubAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrBadCredentials
		},
	}
	h := newTestHandler(t, &service.Services{Auth: auth})

	rr := httptest.NewRecorder()
	h.token(rr, tokenRequest(url.Values{"username": {"alice"}, "password": {"wrong"}}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestToken_MissingFields(t *testing.T) {
	h := newTestHandler(t, &service.Services{Auth: &stubAuthService{}})

	rr := httptest.NewRecorder()
	h.token(rr, tokenRequest(url.Values{"username": {"alice"}}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUsersMe_Success(t *testing.T) {
	h := newTestHandler(t, &service.Services{Auth: &stubAuthService{}})

	req := withUser(httptest.NewRequest(http.MethodGet, "/users/me", nil), authedUser)
	rr := httptest.NewRecorder()
	h.usersMe(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.DescriptionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "alice is authorized!", resp.Description)
}

func TestUsersMe_NoUserInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{Auth: &stubAuthService{}})

	rr := httptest.NewRecorder()
	h.usersMe(rr, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
