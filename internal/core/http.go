package core

import (
	"errors"
	"net/http"
)

// HTTPStatus maps the error taxonomy onto a response status code.
// Anything outside the taxonomy is treated as a storage-layer failure.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
