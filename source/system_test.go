package source

import (
	"context"
	"errors"
	"sync"
	"testing"

	rserrors "github.com/randsrc/randsrc/errors"
)

func TestSystem_Fill(t *testing.T) {
	src := NewSystem()
	ctx := context.Background()

	buf := make([]byte, 16)
	if err := src.Fill(ctx, buf); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Error("random bytes should not all be zero")
	}
}

func TestSystem_FillEmpty(t *testing.T) {
	src := NewSystem()

	if err := src.Fill(context.Background(), nil); err != nil {
		t.Errorf("zero-length fill should succeed, got %v", err)
	}
	if err := src.Fill(context.Background(), []byte{}); err != nil {
		t.Errorf("empty fill should succeed, got %v", err)
	}
}

func TestSystem_FillTooLarge(t *testing.T) {
	src := NewSystem()
	buf := make([]byte, MaxFillBytes+1)

	err := src.Fill(context.Background(), buf)
	if err == nil {
		t.Fatal("oversized fill should fail")
	}
	target := &rserrors.Error{Phase: rserrors.PhaseAcquire, Kind: rserrors.KindInvalidInput}
	if !errors.Is(err, target) {
		t.Errorf("error = %v, want invalid_input", err)
	}
}

func TestSystem_Uint64(t *testing.T) {
	src := NewSystem()
	ctx := context.Background()

	v1, err := Uint64(ctx, src)
	if err != nil {
		t.Fatalf("Uint64 failed: %v", err)
	}
	v2, err := Uint64(ctx, src)
	if err != nil {
		t.Fatalf("Uint64 failed: %v", err)
	}

	if v1 == 0 && v2 == 0 {
		t.Error("both random u64 values are zero, unlikely")
	}
}

func TestSystem_ConcurrentFill(t *testing.T) {
	src := NewSystem()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]byte, 32)
			errs <- src.Fill(ctx, buf)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent fill failed: %v", err)
		}
	}
}

func TestSystem_Identity(t *testing.T) {
	src := NewSystem()
	if src.Name() != "system" {
		t.Errorf("Name = %q, want system", src.Name())
	}
	if !src.Available() {
		t.Error("system source should always be available")
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"system", "rdrand", "rdseed", "insecure"} {
		src := ByName(name)
		if src == nil {
			t.Errorf("ByName(%q) = nil", name)
			continue
		}
		if src.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, src.Name())
		}
	}

	if src := ByName("nonsense"); src != nil {
		t.Errorf("ByName(nonsense) = %v, want nil", src)
	}
}
