package helpers

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

// ErrBodyTooLarge is returned by ReadBody when the body exceeds MaxBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// ReadBody reads the whole request body, up to MaxBodyBytes.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrBodyTooLarge
		}
		return nil, err
	}
	return body, nil
}

// IsID reports whether s is a well-formed resource id. Ids that are not can match no row.
func IsID(s string) bool {
	return uuid.Validate(s) == nil
}
