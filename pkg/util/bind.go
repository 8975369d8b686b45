package util

import (
	"errors"
	"net/http"
)

// BindErrorStatus maps a request body binding error to the status and
// message sent back to the client
func BindErrorStatus(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, "Request body size exceeds limit"
	}

	return http.StatusBadRequest, "Invalid request body"
}
