//go:build linux

package source

import "golang.org/x/sys/unix"

// systemFill reads from getrandom(2) with no flags, blocking until the
// kernel pool is initialized. Reads over 256 bytes can return short, so
// loop until the buffer is full.
func systemFill(p []byte) error {
	for len(p) > 0 {
		n, err := unix.Getrandom(p, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
