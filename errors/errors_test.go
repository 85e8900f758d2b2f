package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseAcquire,
				Kind:   KindUnavailable,
				Source: "system",
				Detail: "getrandom failed",
				Cause:  errors.New("EAGAIN"),
			},
			contains: []string{"[acquire]", "unavailable", "system", "getrandom failed", "caused by", "EAGAIN"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDetect,
				Kind:  KindUnsupported,
			},
			contains: []string{"[detect]", "unsupported"},
		},
		{
			name: "error with source only",
			err: &Error{
				Phase:  PhaseAcquire,
				Kind:   KindExhausted,
				Source: "rdrand",
			},
			contains: []string{"[acquire]", "exhausted", "rdrand"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseAcquire,
		Kind:  KindUnavailable,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseAcquire,
		Kind:   KindExhausted,
		Source: "rdrand",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseAcquire, Kind: KindExhausted}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseDetect, Kind: KindExhausted}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseAcquire, Kind: KindUnavailable}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseAcquire, Kind: KindExhausted}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseAcquire, KindUnavailable).
		Source("system").
		Cause(cause).
		Detail("want %d bytes, got %d", 8, 0).
		Build()

	if err.Phase != PhaseAcquire {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseAcquire)
	}
	if err.Kind != KindUnavailable {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnavailable)
	}
	if err.Source != "system" {
		t.Errorf("Source = %v, want 'system'", err.Source)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "want 8 bytes, got 0" {
		t.Errorf("Detail = %v, want 'want 8 bytes, got 0'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported("rdrand", "cpu lacks RDRAND")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
		if err.Phase != PhaseDetect {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseDetect)
		}
	})

	t.Run("Unavailable", func(t *testing.T) {
		cause := errors.New("syscall failed")
		err := Unavailable("system", cause)
		if err.Kind != KindUnavailable {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnavailable)
		}
		if !errors.Is(err, cause) {
			t.Error("Unavailable should wrap its cause")
		}
	})

	t.Run("Exhausted", func(t *testing.T) {
		err := Exhausted("rdrand", 10)
		if err.Kind != KindExhausted {
			t.Errorf("Kind = %v, want %v", err.Kind, KindExhausted)
		}
		if !containsSubstring(err.Detail, "10") {
			t.Errorf("Detail = %v, should contain attempt count", err.Detail)
		}
	})

	t.Run("ShortFill", func(t *testing.T) {
		err := ShortFill("system", 4, 8)
		if err.Kind != KindShortFill {
			t.Errorf("Kind = %v, want %v", err.Kind, KindShortFill)
		}
		if !containsSubstring(err.Detail, "4") || !containsSubstring(err.Detail, "8") {
			t.Errorf("Detail = %v, should contain byte counts", err.Detail)
		}
	})

	t.Run("InvalidLength", func(t *testing.T) {
		err := InvalidLength(-1)
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
		if !containsSubstring(err.Detail, "-1") {
			t.Errorf("Detail = %v, should contain length", err.Detail)
		}
	})
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
