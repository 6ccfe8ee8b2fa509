package http

import (
	"errors"
	"net/http"

	"github.com/tecnoscan/tecnoscan-api/internal/service"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUserAlreadyExists:       http.StatusConflict,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrEmptyImportFile:         http.StatusBadRequest,
	service.ErrUnsupportedImportCell:   http.StatusBadRequest,

	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrCarNotFound:           http.StatusNotFound,
	store.ErrApplicationNotFound:   http.StatusNotFound,
	store.ErrLookupValueNotFound:   http.StatusNotFound,
	store.ErrReferencedRowNotFound: http.StatusNotFound,
	store.ErrNameAlreadyExists:     http.StatusConflict,
	store.ErrVINCodeAlreadyExists:  http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the JSON error envelope {code, message} with the given
// status.
func writeError(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.Response{Code: status, Message: message}, status)
}

// writeServiceError classifies err through the status map and sends the
// envelope. The message is the sentinel text, never the wrapped driver error.
func writeServiceError(w http.ResponseWriter, err error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			writeError(w, status, target.Error())
			return
		}
	}
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
