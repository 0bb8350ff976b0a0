package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Collaborator and auth error sentinels
var (
	ErrTranslation        = errors.New("translation service failure")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrFileStorage        = errors.New("file storage failure")
)

// NewTranslationError wraps a failed call to the translation collaborator.
// A write that hits this error commits nothing: bilingual content is
// all-or-nothing.
func NewTranslationError(field string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrTranslation,
		Details:    fmt.Sprintf("Failed to translate %s", field),
		Field:      field,
		Cause:      cause,
	}
}

func IsTranslation(err error) bool {
	return errors.Is(err, ErrTranslation)
}

// NewInvalidCredentialsError is returned for both an unknown username and a
// wrong password so the response never reveals which field was wrong.
func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidCredentials,
	}
}

func NewInvalidSessionError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidSession,
		Cause:      cause,
	}
}

// NewFileStorageWarning reports a non-fatal file store/remove issue. The
// database row stays the source of truth, so delete paths surface this to
// the caller without failing the mutation.
func NewFileStorageWarning(path string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusOK,
		err:        ErrFileStorage,
		Details:    fmt.Sprintf("File operation failed for %s", path),
		Cause:      cause,
	}
}

func IsFileStorage(err error) bool {
	return errors.Is(err, ErrFileStorage)
}
