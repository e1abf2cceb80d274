package metrics

import (
	"math"
	"testing"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "all correct with probabilities",
			yTrue: []float64{1, 0, 1, 0},
			yPred: []float64{0.9, 0.1, 0.7, 0.3},
			want:  1.0,
		},
		{
			name:  "half correct",
			yTrue: []float64{1, 1, 0, 0},
			yPred: []float64{0.9, 0.2, 0.8, 0.1},
			want:  0.5,
		},
		{
			name:  "threshold is exclusive at 0.5",
			yTrue: []float64{0},
			yPred: []float64{0.5},
			want:  1.0,
		},
		{
			name:    "empty",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogLoss(t *testing.T) {
	t.Run("confident correct predictions give small loss", func(t *testing.T) {
		got, err := LogLoss([]float64{1, 0}, []float64{0.99, 0.01})
		if err != nil {
			t.Fatalf("LogLoss() error = %v", err)
		}
		if got > 0.02 {
			t.Errorf("LogLoss() = %v, want < 0.02", got)
		}
	})

	t.Run("known value", func(t *testing.T) {
		// -(log(0.8) + log(0.6)) / 2
		want := -(math.Log(0.8) + math.Log(0.6)) / 2
		got, err := LogLoss([]float64{1, 0}, []float64{0.8, 0.4})
		if err != nil {
			t.Fatalf("LogLoss() error = %v", err)
		}
		if math.Abs(got-want) > 1e-10 {
			t.Errorf("LogLoss() = %v, want %v", got, want)
		}
	})

	t.Run("extreme probabilities are clipped", func(t *testing.T) {
		got, err := LogLoss([]float64{1}, []float64{0})
		if err != nil {
			t.Fatalf("LogLoss() error = %v", err)
		}
		if math.IsInf(got, 0) || math.IsNaN(got) {
			t.Errorf("LogLoss() = %v, want finite value", got)
		}
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		if _, err := LogLoss([]float64{1, 0}, []float64{0.5}); err == nil {
			t.Error("expected error")
		}
	})
}
