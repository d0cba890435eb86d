package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindMemberBlocked     Kind = "member_blocked"
	KindLoanLimitExceeded Kind = "loan_limit_exceeded"
	KindBookUnavailable   Kind = "book_unavailable"
	KindAlreadyReturned   Kind = "already_returned"
	KindAlreadyPaid       Kind = "already_paid"
	KindInvalidState      Kind = "invalid_state"
	KindDuplicatePending  Kind = "duplicate_pending"
	KindValidation        Kind = "validation_failed"
	KindForbidden         Kind = "forbidden"
	KindUnauthorized      Kind = "unauthorized"
	KindInternal          Kind = "internal"
)

const (
	EntityMember  = "member"
	EntityBook    = "book"
	EntityIssue   = "issue"
	EntityFine    = "fine"
	EntityRequest = "request"
)

// Error is a classified domain failure. Two errors match under errors.Is when their kinds match.
type Error struct {
	Kind   Kind
	Entity string
	Fields []string
	msg    string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

var (
	ErrNotFound          = New(KindNotFound, "not found")
	ErrMemberBlocked     = New(KindMemberBlocked, "member is blocked")
	ErrLoanLimitExceeded = New(KindLoanLimitExceeded, "loan limit exceeded")
	ErrBookUnavailable   = New(KindBookUnavailable, "book is not available")
	ErrAlreadyReturned   = New(KindAlreadyReturned, "book already returned")
	ErrAlreadyPaid       = New(KindAlreadyPaid, "fine already paid")
	ErrInvalidState      = New(KindInvalidState, "invalid state")
	ErrDuplicatePending  = New(KindDuplicatePending, "a pending request for this book already exists")
	ErrValidation        = New(KindValidation, "validation failed")
	ErrForbidden         = New(KindForbidden, "forbidden")
	ErrUnauthorized      = New(KindUnauthorized, "unauthorized")
	ErrInternal          = New(KindInternal, "internal error")
)

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, msg: entity + " not found"}
}

func Validation(fields ...string) *Error {
	msg := "validation failed"
	if len(fields) > 0 {
		msg = fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
	}
	return &Error{Kind: KindValidation, Fields: fields, msg: msg}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, msg: fmt.Sprintf(format, args...)}
}

// KindOf classifies err; anything unclassified is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As returns the classified error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
