package source

import (
	"context"
	"encoding/binary"

	"github.com/randsrc/randsrc/errors"
)

// MaxFillBytes limits single-call fills to prevent runaway allocation (1MB).
const MaxFillBytes = 1 << 20

// Source is a single entropy provider.
type Source interface {
	// Name identifies the provider ("system", "rdrand", ...).
	Name() string

	// Available reports whether the provider can produce entropy on this
	// platform. Unavailable sources fail every Fill.
	Available() bool

	// Fill populates p with random bytes. On success every byte of p is
	// defined and independently random. On error the contents of p are
	// unspecified and must not be used as entropy.
	Fill(ctx context.Context, p []byte) error
}

// Uint64 draws one 64-bit word from src.
func Uint64(ctx context.Context, src Source) (uint64, error) {
	var buf [8]byte
	if err := src.Fill(ctx, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// All returns every provider known to the toolkit, available or not.
// Callers filter on Available as needed. The insecure source is included
// for diagnostics but is never a default.
func All() []Source {
	return []Source{
		NewSystem(),
		NewHardware(),
		NewHardware().WithSeed(),
		NewInsecure(),
	}
}

// ByName returns the provider with the given name, or nil.
func ByName(name string) Source {
	for _, s := range All() {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func checkLen(n int) error {
	if n < 0 || n > MaxFillBytes {
		return errors.InvalidLength(n)
	}
	return nil
}
