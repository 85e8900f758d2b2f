package source

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

var (
	insecureRand   = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // intentionally insecure, diagnostics only
	insecureRandMu sync.Mutex
)

// Insecure produces fast non-cryptographic random bytes. It exists so
// comparison runs have a floor; never select it for real entropy.
type Insecure struct{}

// NewInsecure creates a new insecure source.
func NewInsecure() *Insecure {
	return &Insecure{}
}

func (i *Insecure) Name() string {
	return "insecure"
}

func (i *Insecure) Available() bool {
	return true
}

func (i *Insecure) Fill(_ context.Context, p []byte) error {
	if err := checkLen(len(p)); err != nil {
		return err
	}
	insecureRandMu.Lock()
	_, _ = insecureRand.Read(p)
	insecureRandMu.Unlock()
	return nil
}
