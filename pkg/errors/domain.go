package errors

import (
	stdErrors "errors"
	"net/http"
)

// Kind classifies domain failures independently of transport.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// DomainError is a tagged use-case error. Compare with errors.Is against the
// declared sentinels; classify with KindOf.
type DomainError struct {
	Kind    Kind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewValidation(msg string) *DomainError {
	return &DomainError{Kind: KindValidation, Message: msg}
}

func NewNotFound(msg string) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: msg}
}

func NewConflict(msg string) *DomainError {
	return &DomainError{Kind: KindConflict, Message: msg}
}

// KindOf returns the kind of the first DomainError in err's chain,
// KindInternal when there is none.
func KindOf(err error) Kind {
	var de *DomainError
	if stdErrors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// ToHTTP converts a domain error into an HTTPError. The message of a wrapped
// error is kept so callers see e.g. "Unknown state: BOGUS". Internal errors
// collapse to ErrInternalServerError.
func ToHTTP(err error) *HTTPError {
	var he *HTTPError
	if stdErrors.As(err, &he) {
		return he
	}
	switch KindOf(err) {
	case KindValidation:
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case KindNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error())
	case KindConflict:
		return NewHTTPError(http.StatusConflict, err.Error())
	default:
		return ErrInternalServerError
	}
}
