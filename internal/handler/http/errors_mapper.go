package http

import (
	"errors"
	"net/http"

	"github.com/Dev-vesper/notepad/internal/service"
	"github.com/Dev-vesper/notepad/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
	service.ErrNoteNotFound:            http.StatusNotFound,
	service.ErrProfileNotFound:         http.StatusNotFound,

	store.ErrInvalidUsername:   http.StatusBadRequest,
	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrDocumentNotFound:  http.StatusInternalServerError,
	store.ErrCorruptDocument:   http.StatusInternalServerError,
	store.ErrIOFailure:         http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
