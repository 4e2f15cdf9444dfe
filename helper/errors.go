package helper

import (
	"errors"
	"strings"
)

// Lỗi nghiệp vụ, handler ánh xạ sang mã HTTP
var (
	ErrValidation        = errors.New("validation")
	ErrNotFound          = errors.New("not_found")
	ErrConflict          = errors.New("conflict")
	ErrIllegalTransition = errors.New("illegal_transition")
	ErrConfiguration     = errors.New("configuration")
	ErrForbidden         = errors.New("forbidden")
)

// BusinessError gói lỗi nghiệp vụ kèm thông điệp cho client
type BusinessError struct {
	Kind    error
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Kind
}

func NewBusinessError(kind error, message string) *BusinessError {
	return &BusinessError{Kind: kind, Message: message}
}

// IsTransientDBError nhận diện deadlock/serialization failure để retry
func IsTransientDBError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, needle := range []string{
		"deadlock detected",
		"could not serialize access",
		"database is locked",
	} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
