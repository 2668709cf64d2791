/*
Package errors implements the error taxonomy of the custody engine.

Every failure surfaced by the engine wraps one of the root errors declared
here. Test for the kind of a failure with the root's Is method:

	if errors.ErrNotFound.Is(err) {
		...
	}

Use Wrap to add context while keeping the root cause intact. The first Wrap
call attaches a stack trace, so errors carry their creation point.
*/
package errors
