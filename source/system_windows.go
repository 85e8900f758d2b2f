//go:build windows

package source

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// BCRYPT_USE_SYSTEM_PREFERRED_RNG: null algorithm handle, OS picks the
// default generator.
const useSystemPreferredRNG = 0x00000002

var (
	bcrypt              = windows.NewLazySystemDLL("bcrypt.dll")
	procBCryptGenRandom = bcrypt.NewProc("BCryptGenRandom")
)

func systemFill(p []byte) error {
	r, _, _ := procBCryptGenRandom.Call(
		0, // hAlgorithm: null for system-preferred
		uintptr(unsafe.Pointer(&p[0])),
		uintptr(len(p)),
		useSystemPreferredRNG,
	)
	// NTSTATUS: zero is STATUS_SUCCESS, anything else is failure.
	if r != 0 {
		return fmt.Errorf("BCryptGenRandom: NTSTATUS 0x%08x", uint32(r))
	}
	return nil
}
