package errors

import (
	"strings"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		reason  string
		value   interface{}
		wantMsg string
	}{
		{
			name:    "k too small",
			param:   "k",
			reason:  "must be at least 2",
			value:   1,
			wantMsg: "tmwr: validation failed for parameter 'k': must be at least 2 (got: 1)",
		},
		{
			name:    "repeats invalid",
			param:   "repeats",
			reason:  "must be at least 1",
			value:   0,
			wantMsg: "tmwr: validation failed for parameter 'repeats': must be at least 1 (got: 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.param, tt.reason, tt.value)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}

			var ve *ValidationError
			if !As(err, &ve) {
				t.Error("error should unwrap to *ValidationError")
			}
		})
	}
}

func TestNewInsufficientStratumError(t *testing.T) {
	err := NewInsufficientStratumError("rare", 3, 5)

	want := "tmwr: stratum 'rare' has only 3 members, cannot place at least one in each of 5 folds"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var se *InsufficientStratumError
	if !As(err, &se) {
		t.Fatal("error should unwrap to *InsufficientStratumError")
	}
	if se.Stratum != "rare" || se.Size != 3 || se.Folds != 5 {
		t.Errorf("unexpected fields: %+v", se)
	}
}

func TestNewAllFoldsFailedError(t *testing.T) {
	first := New("fit exploded")
	err := NewAllFoldsFailedError(10, first)

	if !strings.Contains(err.Error(), "all 10 folds failed") {
		t.Errorf("Error() = %q, want mention of all 10 folds", err.Error())
	}
	if !Is(err, first) {
		t.Error("AllFoldsFailedError should unwrap to the first failure")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("StandardScaler", "Transform")

	if !strings.Contains(err.Error(), "StandardScaler") || !strings.Contains(err.Error(), "Transform") {
		t.Errorf("Error() = %q, want estimator and method names", err.Error())
	}
}

func TestWarnUsesHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	w := NewUndefinedMetricWarning("rmse", "no contributing folds", 0)
	Warn(w)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	var umw *UndefinedMetricWarning
	if !As(captured, &umw) {
		t.Fatalf("captured warning has wrong type: %T", captured)
	}
	if umw.Metric != "rmse" {
		t.Errorf("Metric = %q, want rmse", umw.Metric)
	}
}

func TestWarnPrefersZerologFunc(t *testing.T) {
	handlerCalled := false
	SetWarningHandler(func(w error) { handlerCalled = true })
	defer SetWarningHandler(nil)

	var viaZerolog error
	SetZerologWarnFunc(func(w error) { viaZerolog = w })
	defer SetZerologWarnFunc(nil)

	Warn(New("drop me"))

	if viaZerolog == nil {
		t.Error("zerolog warn func should take precedence")
	}
	if handlerCalled {
		t.Error("fallback handler should not run when zerolog func is set")
	}
}
