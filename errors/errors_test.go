package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateCodePanics(t *testing.T) {
	assert.Panics(t, func() {
		// Code 2 is taken by ErrUnauthorized.
		Register(2, "duplicate code")
	})
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind  *Error
		err   error
		match bool
	}{
		"instance of the root error": {
			kind:  ErrNotFound,
			err:   ErrNotFound,
			match: true,
		},
		"wrapped root error": {
			kind:  ErrNotFound,
			err:   Wrap(ErrNotFound, "transaction 42"),
			match: true,
		},
		"deeply wrapped root error": {
			kind:  ErrAlreadyApproved,
			err:   Wrap(Wrap(ErrAlreadyApproved, "inner"), "outer"),
			match: true,
		},
		"different root error": {
			kind:  ErrNotFound,
			err:   ErrExecuted,
			match: false,
		},
		"wrapped different root error": {
			kind:  ErrNotFound,
			err:   Wrap(ErrUnauthorized, "nope"),
			match: false,
		},
		"stdlib error": {
			kind:  ErrNotFound,
			err:   fmt.Errorf("not found"),
			match: false,
		},
		"nil error": {
			kind:  ErrNotFound,
			err:   nil,
			match: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.match, tc.kind.Is(tc.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(ErrInvalidAmount, "got -4")
	require.Error(t, err)
	assert.Equal(t, "got -4: invalid amount", err.Error())
}

func TestWrapfMessage(t *testing.T) {
	err := Wrapf(ErrInvalidThreshold, "threshold %d of %d owners", 5, 3)
	require.Error(t, err)
	assert.Equal(t, "threshold 5 of 3 owners: invalid threshold", err.Error())
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	inner := Wrap(ErrOverflow, "inner")
	st := stackTrace(inner)
	require.NotNil(t, st)

	// Wrapping again must not shadow the original trace.
	outer := Wrap(inner, "outer")
	assert.Equal(t, fmt.Sprintf("%v", st), fmt.Sprintf("%v", stackTrace(outer)))
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("the end is near")
	}()
	require.Error(t, err)
	assert.True(t, ErrPanic.Is(err))
}
