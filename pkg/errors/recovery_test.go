package errors

import (
	"strings"
	"testing"
)

func TestSafeExecute(t *testing.T) {
	t.Run("no panic, no error", func(t *testing.T) {
		err := SafeExecute("noop", func() error { return nil })
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("no panic, error passes through", func(t *testing.T) {
		want := New("fit failed")
		err := SafeExecute("fit", func() error { return want })
		if !Is(err, want) {
			t.Errorf("got %v, want %v", err, want)
		}
	})

	t.Run("panic becomes PanicError", func(t *testing.T) {
		err := SafeExecute("fold 3 fit", func() error {
			panic("index out of range")
		})
		if err == nil {
			t.Fatal("expected error from panic")
		}

		var pe *PanicError
		if !As(err, &pe) {
			t.Fatalf("got %T, want *PanicError", err)
		}
		if pe.Operation != "fold 3 fit" {
			t.Errorf("Operation = %q, want 'fold 3 fit'", pe.Operation)
		}
		if pe.StackTrace == "" {
			t.Error("stack trace should be captured")
		}
		if !strings.Contains(err.Error(), "index out of range") {
			t.Errorf("Error() = %q, want the panic value", err.Error())
		}
	})
}

func TestRecoverWrapsExistingError(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "predict")
		err = New("half done")
		panic("then it panicked")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "half done") || !strings.Contains(err.Error(), "then it panicked") {
		t.Errorf("Error() = %q, want both original error and panic", err.Error())
	}
}
