package source

import (
	"context"
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/randsrc/randsrc/errors"
)

// maxStepAttempts bounds the retry loop around one word read. Ten
// consecutive underflows on functioning silicon is the conventional
// give-up point for this instruction family.
const maxStepAttempts = 10

// Hardware reads 64-bit words directly from the CPU's on-die random
// number generator. By default it issues RDRAND; WithSeed switches to
// RDSEED, which draws from the conditioned entropy source feeding the
// DRBG and underflows more often.
type Hardware struct {
	stepFn func() (uint64, bool) // test hook; nil means the real instruction
	seed   bool
}

// NewHardware creates a hardware source using the RDRAND instruction.
func NewHardware() *Hardware {
	return &Hardware{}
}

// WithSeed selects the RDSEED instruction instead of RDRAND.
func (h *Hardware) WithSeed() *Hardware {
	h.seed = true
	return h
}

func (h *Hardware) Name() string {
	if h.seed {
		return "rdseed"
	}
	return "rdrand"
}

// Available reports whether the CPU advertises the instruction via CPUID.
func (h *Hardware) Available() bool {
	if h.stepFn != nil {
		return true
	}
	if h.seed {
		return hasRDSEED()
	}
	return hasRDRAND()
}

// step issues exactly one instruction. ok mirrors the carry flag: false
// means the generator had no value ready and out is undefined.
func (h *Hardware) step() (out uint64, ok bool) {
	if h.stepFn != nil {
		return h.stepFn()
	}
	if h.seed {
		return rdseed64()
	}
	return rdrand64()
}

// TryUint64 performs a single instruction attempt with no retry.
// A false return is expected transient behavior; most callers want
// Fill or Uint64 instead, which retry.
func (h *Hardware) TryUint64() (uint64, bool) {
	if !h.Available() {
		return 0, false
	}
	return h.step()
}

// word draws one value, retrying a bounded number of times on underflow.
func (h *Hardware) word() (uint64, error) {
	for i := 0; i < maxStepAttempts; i++ {
		if v, ok := h.step(); ok {
			return v, nil
		}
		Logger().Debug("hardware underflow",
			zap.String("source", h.Name()),
			zap.Int("attempt", i+1))
	}
	return 0, errors.Exhausted(h.Name(), maxStepAttempts)
}

// Fill populates p by drawing 64-bit words. A trailing fragment shorter
// than a word draws a full word and keeps the leading bytes.
func (h *Hardware) Fill(_ context.Context, p []byte) error {
	if err := checkLen(len(p)); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	if !h.Available() {
		return errors.Unsupported(h.Name(), "cpu does not expose the instruction")
	}
	for len(p) >= 8 {
		v, err := h.word()
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(p, v)
		p = p[8:]
	}
	if len(p) > 0 {
		v, err := h.word()
		if err != nil {
			return err
		}
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], v)
		copy(p, tail[:])
	}
	return nil
}
