package http

import (
	"errors"
	"net/http"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/service"
	"github.com/showpass/showpass/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrBadCredentials:           http.StatusUnauthorized,
	service.ErrTokenInvalidOrExpired:    http.StatusUnauthorized,
	service.ErrRoleNotAllowed:           http.StatusUnauthorized,
	service.ErrMFANotEnabled:            http.StatusBadRequest,
	service.ErrMFACodeMismatch:          http.StatusUnauthorized,
	service.ErrExternalAccountNotLinked: http.StatusForbidden,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrTicketNotFound:    http.StatusNotFound,
	store.ErrSongNotFound:      http.StatusNotFound,
	store.ErrEmptyUpdate:       http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// mapError resolves err to an HTTP status and a client-safe message.
// Only the text of the matched sentinel is exposed; wrapped detail stays
// in the logs.
func mapError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status == http.StatusInternalServerError {
				return status, http.StatusText(status)
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// handleError logs err and writes the mapped status and message.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	http.Error(w, message, status)
}
