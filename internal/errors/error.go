package errors

import (
	stderrors "errors"
	"fmt"
)

// OpError is the structured error carried across every layer: a stable
// string code, a human-readable message, and optional structured details.
type OpError struct {
	Code    Code           `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	cause   error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
}

func (e *OpError) Unwrap() error { return e.cause }

func New(code Code, message string, details map[string]any) *OpError {
	return &OpError{Code: code, Message: message, Details: details}
}

func Wrap(code Code, message string, details map[string]any, cause error) *OpError {
	return &OpError{Code: code, Message: message, Details: details, cause: cause}
}

func As(err error) (*OpError, bool) {
	var oe *OpError
	if stderrors.As(err, &oe) {
		return oe, true
	}
	return nil, false
}

func AsOrWrap(err error) *OpError {
	if oe, ok := As(err); ok {
		return oe
	}
	return Wrap(CodeInternal, err.Error(), nil, err)
}
