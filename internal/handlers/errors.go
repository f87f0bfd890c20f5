package handlers

import (
	"errors"
	"net/http"

	"github.com/Zumgugger/vielseitig/internal/service"
)

// respondWithServiceError maps a service error to an HTTP status code and
// writes the error body. Unknown errors become a 500 with a generic message.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case isNotFound(err):
		respondWithError(w, http.StatusNotFound, err.Error(), nil)
	case isForbidden(err):
		respondWithError(w, http.StatusForbidden, err.Error(), nil)
	case isInvalid(err):
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrSchoolNameTaken):
		respondWithError(w, http.StatusConflict, err.Error(), nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error", err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrListNotFound) ||
		errors.Is(err, service.ErrDefaultListMissing) ||
		errors.Is(err, service.ErrAdjectiveNotFound) ||
		errors.Is(err, service.ErrSessionNotFound) ||
		errors.Is(err, service.ErrShareLinkNotFound) ||
		errors.Is(err, service.ErrUserNotFound) ||
		errors.Is(err, service.ErrSchoolNotFound)
}

func isForbidden(err error) bool {
	return errors.Is(err, service.ErrListNotShared) ||
		errors.Is(err, service.ErrShareExpired) ||
		errors.Is(err, service.ErrOwnerNotActive) ||
		errors.Is(err, service.ErrSchoolNotActive) ||
		errors.Is(err, service.ErrNotListOwner) ||
		errors.Is(err, service.ErrListReadOnly)
}

func isInvalid(err error) bool {
	return errors.Is(err, service.ErrInvalidBucket) ||
		errors.Is(err, service.ErrSessionHasNoList) ||
		errors.Is(err, service.ErrEmptyWord) ||
		errors.Is(err, service.ErrEmptyListName) ||
		errors.Is(err, service.ErrSharingDisabled) ||
		errors.Is(err, service.ErrPasswordTooShort)
}
