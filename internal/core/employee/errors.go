package employee

import (
	"errors"
	"fmt"
)

const requiredMsg = " is mandatory"

var (
	// ErrValidation は入力値検証に失敗したことを表します。ValidationError はこれをラップします。
	ErrValidation = errors.New("employee: validation failed")

	ErrInvalidID             = errors.New("employee: invalid id")
	ErrInvalidPageSize       = errors.New("employee: invalid page size")
	ErrInvalidPageToken      = errors.New("employee: invalid page token")
	ErrEmployeeNotFound      = errors.New("employee: not found")
	ErrEmployeeAlreadyExists = errors.New("employee: already exists")
	ErrConcurrentUpdate      = errors.New("employee: concurrent update")
)

// ValidationError は必須項目の欠落や長さ制約違反を表す唯一のドメインエラーです。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + e.Reason
}

// Unwrap により errors.Is(err, ErrValidation) が成立します。
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func required(field string) error {
	return &ValidationError{Field: field, Reason: requiredMsg}
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
