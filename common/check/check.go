package check

import (
	"context"
	"errors"
)

// PanicIfErr panics if err is not nil.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

// PanicIfNotCancelledErr panics if err is not nil and is not caused by context cancellation.
// It is meant for the very top of main, where a cancelled context is a normal shutdown.
func PanicIfNotCancelledErr(err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}
