//go:build !linux && !windows

package source

import (
	"crypto/rand"
	"io"
)

// systemFill falls back to crypto/rand, which already routes to the
// platform's preferred generator (arc4random_buf on Darwin and the BSDs).
func systemFill(p []byte) error {
	_, err := io.ReadFull(rand.Reader, p)
	return err
}
