package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/service"
	"github.com/showpass/showpass/internal/utils"
	"github.com/showpass/showpass/models"
)

// ─────────────────────────────────────────────
// Stub services
// ─────────────────────────────────────────────

// stubAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type stubAuthService struct {
	registerUserFn func(ctx context.Context, body models.UserCreateBody) (models.User, error)
	authenticateFn func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	currentUserFn  func(ctx context.Context, tokenString string) (models.User, error)
	requireRoleFn  func(user models.User, role models.Role) error
}

func (s *stubAuthService) RegisterUser(ctx context.Context, body models.UserCreateBody) (models.User, error) {
	return s.registerUserFn(ctx, body)
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	return s.authenticateFn(ctx, username, password)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return s.createTokenFn(ctx, user)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	return s.currentUserFn(ctx, tokenString)
}

func (s *stubAuthService) RequireRole(user models.User, role models.Role) error {
	if s.requireRoleFn != nil {
		return s.requireRoleFn(user, role)
	}
	if user.Role != role {
		return service.ErrRoleNotAllowed
	}
	return nil
}

type stubMFAService struct {
	enableFn func(ctx context.Context, user models.User) (models.MFAEnableResponse, error)
	verifyFn func(ctx context.Context, username, code string) error
}

func (s *stubMFAService) Enable(ctx context.Context, user models.User) (models.MFAEnableResponse, error) {
	return s.enableFn(ctx, user)
}

func (s *stubMFAService) Verify(ctx context.Context, username, code string) error {
	return s.verifyFn(ctx, username, code)
}

type stubGitHubResolver struct {
	resolveUserFn func(ctx context.Context, accessToken string) (models.User, error)
}

func (s *stubGitHubResolver) ResolveUser(ctx context.Context, accessToken string) (models.User, error) {
	return s.resolveUserFn(ctx, accessToken)
}

type stubTicketService struct {
	createTicketFn        func(ctx context.Context, body models.TicketCreateBody) (int64, error)
	getTicketFn           func(ctx context.Context, ticketID int64) (models.Ticket, error)
	getTicketsForShowFn   func(ctx context.Context, show string) ([]models.Ticket, error)
	updateTicketPriceFn   func(ctx context.Context, ticketID int64, price float64) error
	updateTicketFn        func(ctx context.Context, ticketID int64, update models.TicketUpdate) error
	updateTicketDetailsFn func(ctx context.Context, ticketID int64, details models.TicketDetails) error
	deleteTicketFn        func(ctx context.Context, ticketID int64) error
	createEventFn         func(ctx context.Context, body models.EventCreateBody) (int64, error)
}

func (s *stubTicketService) CreateTicket(ctx context.Context, body models.TicketCreateBody) (int64, error) {
	return s.createTicketFn(ctx, body)
}

func (s *stubTicketService) GetTicket(ctx context.Context, ticketID int64) (models.Ticket, error) {
	return s.getTicketFn(ctx, ticketID)
}

func (s *stubTicketService) GetTicketsForShow(ctx context.Context, show string) ([]models.Ticket, error) {
	return s.getTicketsForShowFn(ctx, show)
}

func (s *stubTicketService) UpdateTicketPrice(ctx context.Context, ticketID int64, price float64) error {
	return s.updateTicketPriceFn(ctx, ticketID, price)
}

func (s *stubTicketService) UpdateTicket(ctx context.Context, ticketID int64, update models.TicketUpdate) error {
	return s.updateTicketFn(ctx, ticketID, update)
}

func (s *stubTicketService) UpdateTicketDetails(ctx context.Context, ticketID int64, details models.TicketDetails) error {
	return s.updateTicketDetailsFn(ctx, ticketID, details)
}

func (s *stubTicketService) DeleteTicket(ctx context.Context, ticketID int64) error {
	return s.deleteTicketFn(ctx, ticketID)
}

func (s *stubTicketService) CreateEvent(ctx context.Context, body models.EventCreateBody) (int64, error) {
	return s.createEventFn(ctx, body)
}

type stubCatalogService struct {
	addSongFn    func(ctx context.Context, song models.Song) (string, error)
	getSongFn    func(ctx context.Context, songID string) (models.Song, error)
	updateSongFn func(ctx context.Context, songID string, update models.SongUpdate) error
	deleteSongFn func(ctx context.Context, songID string) error
}

func (s *stubCatalogService) AddSong(ctx context.Context, song models.Song) (string, error) {
	return s.addSongFn(ctx, song)
}

func (s *stubCatalogService) GetSong(ctx context.Context, songID string) (models.Song, error) {
	return s.getSongFn(ctx, songID)
}

func (s *stubCatalogService) UpdateSong(ctx context.Context, songID string, update models.SongUpdate) error {
	return s.updateSongFn(ctx, songID, update)
}

func (s *stubCatalogService) DeleteSong(ctx context.Context, songID string) error {
	return s.deleteSongFn(ctx, songID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given stub services. Nil
// fields stay nil, which is fine as long as the test does not route into
// them (except Catalog, whose nilness changes the mounted routes).
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// withUser places user in the request context the same way the auth
// middleware does, so handlers behind the gate can be tested directly.
func withUser(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserCtxKey, user)
	return r.WithContext(ctx)
}

// authedUser is a convenience fixture used across multiple tests.
var authedUser = models.User{UserID: 1, Username: "alice", Email: "alice@example.com", Role: models.RoleBasic}

// serve routes req through a full router built from h and returns the
// recorder.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
