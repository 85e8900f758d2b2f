package source

import (
	"context"

	"go.uber.org/zap"

	"github.com/randsrc/randsrc/errors"
)

// System reads from the operating system's preferred random number
// generator. It is always available and is the default provider.
type System struct{}

// NewSystem creates a new system source.
func NewSystem() *System {
	return &System{}
}

func (s *System) Name() string {
	return "system"
}

func (s *System) Available() bool {
	return true
}

// Fill populates p from the OS generator. A single request either
// succeeds in full or fails; no retry happens at this level.
func (s *System) Fill(_ context.Context, p []byte) error {
	if err := checkLen(len(p)); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	if err := systemFill(p); err != nil {
		Logger().Debug("system fill failed",
			zap.Int("len", len(p)),
			zap.Error(err))
		return errors.Unavailable(s.Name(), err)
	}
	return nil
}
