//go:build !unix

package riffline

func isInterrupted(err error) bool {
	return false
}
