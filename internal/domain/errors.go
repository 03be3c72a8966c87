package domain

import "fmt"

type ErrCode string

const (
	CodeValidation        ErrCode = "validation_error"
	CodeNotFound          ErrCode = "not_found"
	CodeAlreadyRegistered ErrCode = "already_registered"
	CodeInvalidState      ErrCode = "invalid_state"
)

type AppError struct {
	Code    ErrCode
	Message string
	Meta    map[string]string
}

func (e *AppError) Error() string {
	if len(e.Meta) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Meta)
}

func ErrValidation(msg string) error { return &AppError{Code: CodeValidation, Message: msg} }
func ErrValidationMeta(msg string, meta map[string]string) error {
	return &AppError{Code: CodeValidation, Message: msg, Meta: meta}
}
func ErrNotFound(msg string) error     { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrInvalidState(msg string) error { return &AppError{Code: CodeInvalidState, Message: msg} }

// ErrAlreadyRegistered is the expected business-rule rejection for duplicate
// registrations. The message is the literal the web client string-matches on.
func ErrAlreadyRegistered() error {
	return &AppError{Code: CodeAlreadyRegistered, Message: "alreadyregistered"}
}
