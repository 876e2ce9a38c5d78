//go:build unix

package riffline

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isInterrupted reports whether a failed read should simply be retried.
func isInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}
