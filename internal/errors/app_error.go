package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError is a coded application error. Two AppErrors match under errors.Is
// when their codes are equal, so sentinels can be re-created with extra details.
type AppError struct {
	Code    ErrorCode
	Message string
	Details []string
	Err     error
}

// ErrorOption is a functional option for configuring application errors
type ErrorOption func(*AppError)

// WithDetails adds detail messages to the error
func WithDetails(details ...string) ErrorOption {
	return func(e *AppError) {
		e.Details = append(e.Details, details...)
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(e *AppError) {
		e.Message = message
	}
}

// WithCause records the underlying error
func WithCause(err error) ErrorOption {
	return func(e *AppError) {
		e.Err = err
	}
}

// New creates an error with the default message of code
func New(code ErrorCode, opts ...ErrorOption) *AppError {
	e := &AppError{
		Code:    code,
		Message: GetErrorMessage(code),
		Details: []string{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// With returns a copy of e with additional options applied
func (e *AppError) With(opts ...ErrorOption) *AppError {
	clone := &AppError{
		Code:    e.Code,
		Message: e.Message,
		Details: append([]string{}, e.Details...),
		Err:     e.Err,
	}
	for _, opt := range opts {
		opt(clone)
	}
	return clone
}

func (e *AppError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if len(e.Details) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Details, "; "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// As finds the first AppError in err's chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain
func CodeOf(err error) (ErrorCode, bool) {
	appErr, ok := As(err)
	if !ok {
		return "", false
	}
	return appErr.Code, true
}

// IsUsageError reports codes caused by how the user invoked a command
func IsUsageError(code ErrorCode) bool {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate,
		SearchEmptyQuery, SearchInvalidKinds, SystemUsageError:
		return true
	default:
		return false
	}
}

// GetExitCode maps an error to a process exit status: 0 success, 2 usage, 1 anything else
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	code, ok := CodeOf(err)
	if ok && IsUsageError(code) {
		return 2
	}
	return 1
}
