package randsrc

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/randsrc/randsrc/source"
)

var defaultSource source.Source = source.NewSystem()

// Read fills p from the system source, the safe default provider.
func Read(ctx context.Context, p []byte) error {
	return defaultSource.Fill(ctx, p)
}

// Uint64 draws one 64-bit word from the system source.
func Uint64(ctx context.Context) (uint64, error) {
	return source.Uint64(ctx, defaultSource)
}

// HexString renders a sample as lowercase two-digit hex pairs with no
// separator: exactly 2*len(p) characters.
func HexString(p []byte) string {
	return hex.EncodeToString(p)
}

// HexWord renders a 64-bit word as 16 zero-padded lowercase hex digits.
func HexWord(v uint64) string {
	return fmt.Sprintf("%016x", v)
}
