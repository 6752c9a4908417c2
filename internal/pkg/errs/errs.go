// Package errs thinly wraps cockroachdb/errors so call sites stay
// uniform: Wrap for context, Mark for attaching a sentinel that
// errors.Is can match without losing the cause.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
