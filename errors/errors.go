package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrUnauthorized is returned when a caller is not allowed to perform
	// an operation. A missing configuration is reported the same way,
	// because without an owner set there is nothing to authorize against.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is returned when a requested transaction record does
	// not exist.
	ErrNotFound = Register(3, "not found")

	// ErrOverflow is returned when a checked arithmetic operation cannot
	// complete because the result exceeds the value type.
	ErrOverflow = Register(4, "arithmetic overflow")

	// ErrInvalidAmount is returned for a transfer amount that is not a
	// positive value.
	ErrInvalidAmount = Register(5, "invalid amount")

	// ErrInvalidThreshold is returned when a required approvals value is
	// zero or greater than the number of owners.
	ErrInvalidThreshold = Register(6, "invalid threshold")

	// ErrInvalidOwner is returned when an owner set is empty or contains
	// a malformed identity.
	ErrInvalidOwner = Register(7, "invalid owner")

	// ErrDuplicateOwner is returned when the same identity appears more
	// than once in an owner set.
	ErrDuplicateOwner = Register(8, "duplicate owner")

	// ErrAlreadyInitialized is returned when a custody configuration
	// exists and a second initialization is attempted.
	ErrAlreadyInitialized = Register(9, "already initialized")

	// ErrAlreadyApproved is returned when an owner approves the same
	// transaction twice.
	ErrAlreadyApproved = Register(10, "already approved")

	// ErrInsufficientApprovals is returned when execution is requested
	// before the approval count reached the configured threshold.
	ErrInsufficientApprovals = Register(11, "insufficient approvals")

	// ErrExecuted is returned when a terminal (executed) transaction is
	// approved or executed again.
	ErrExecuted = Register(12, "transaction already executed")

	// ErrTransferFailed is returned when the external transfer primitive
	// reports a failure. The transaction state is rolled back first, so
	// execution stays retryable.
	ErrTransferFailed = Register(13, "token transfer failed")

	// ErrInput stands for general input problems, for example a malformed
	// address.
	ErrInput = Register(14, "invalid input")

	// ErrState is returned when an object is in a state that the
	// requested operation does not permit.
	ErrState = Register(15, "invalid state")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// All root errors of this project are declared in this package. This function
// ensures that no error code is used twice. Attempt to reuse an error code
// results in panic.
//
// Use this function only during a program startup phase.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No two
// error instances should share the same error code.
var usedCodes = map[uint32]*Error{
	1: nil, // Error code 1 is restricted for non-custos errors and must not be used.
}

// Error represents a root error.
//
// This framework categorizes issues by root error. Each error instance
// created during the runtime should wrap one of the declared root errors, so
// that callers can test the error kind in a stable manner.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the unique code of this error kind.
func (e Error) Code() uint32 {
	return e.code
}

// New returns a new error. Returned instance is having the root cause set to
// this error. Below two lines are equal
//   e.New("my description")
//   Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities.
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is check if given error instance is of a given kind/type. This involves
// unwrapping given error using the Cause method if available.
func (kind *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if kind == nil {
		if err == nil {
			return true
		}
		return reflect.ValueOf(err).IsNil()
	}

	for {
		if err == kind {
			return true
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Wrap extends given error with an additional information.
//
// If err is nil, this returns nil, avoiding the need for an if statement when
// wrapping an error returned at the end of a function.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// Attach a stack trace only once per error, at the most inner wrap
	// call.
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap function with additional functionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// stackTrace returns the first found stack trace frame carried by given error
// or any wrapped error. It returns nil if no stack trace is found.
func stackTrace(err error) errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// Recover captures a panic and stop its propagation. If panic happens it is
// transformed into a ErrPanic instance and assigned to given error. Call this
// function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}
