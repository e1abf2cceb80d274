package metrics

import (
	"math"
	"testing"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     []float64
		yPred     []float64
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     []float64{1.0, 2.0, 3.0, 4.0, 5.0},
			yPred:     []float64{1.0, 2.0, 3.0, 4.0, 5.0},
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "simple case",
			yTrue:     []float64{1.0, 2.0, 3.0, 4.0},
			yPred:     []float64{1.5, 2.5, 2.5, 3.5},
			want:      0.25, // ((0.5)^2 + (0.5)^2 + (-0.5)^2 + (-0.5)^2) / 4 = 1.0/4 = 0.25
			tolerance: 1e-10,
		},
		{
			name:      "larger errors",
			yTrue:     []float64{10.0, 20.0, 30.0},
			yPred:     []float64{12.0, 18.0, 33.0},
			want:      17.0 / 3.0, // ((2)^2 + (-2)^2 + (3)^2) / 3 = (4 + 4 + 9) / 3 = 17/3 ≈ 5.67
			tolerance: 1e-10,
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{1.0, 2.0, 3.0},
			yPred:   []float64{1.0, 2.0},
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   nil,
			yPred:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MSE() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MSE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRMSE(t *testing.T) {
	yTrue := []float64{1.0, 2.0, 3.0, 4.0}
	yPred := []float64{1.5, 2.5, 2.5, 3.5}

	got, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE() error = %v", err)
	}
	if math.Abs(got-0.5) > 1e-10 {
		t.Errorf("RMSE() = %v, want 0.5", got)
	}
}

func TestMAE(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "simple case",
			yTrue: []float64{1.0, 2.0, 3.0},
			yPred: []float64{2.0, 2.0, 5.0},
			want:  1.0, // (1 + 0 + 2) / 3
		},
		{
			name:  "negative values",
			yTrue: []float64{-1.0, -2.0},
			yPred: []float64{1.0, -4.0},
			want:  2.0, // (2 + 2) / 2
		},
		{
			name:    "empty",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MAE() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("MAE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestR2Score(t *testing.T) {
	t.Run("perfect fit", func(t *testing.T) {
		y := []float64{1.0, 2.0, 3.0, 4.0}
		got, err := R2Score(y, y)
		if err != nil {
			t.Fatalf("R2Score() error = %v", err)
		}
		if math.Abs(got-1.0) > 1e-10 {
			t.Errorf("R2Score() = %v, want 1.0", got)
		}
	})

	t.Run("mean prediction gives zero", func(t *testing.T) {
		yTrue := []float64{1.0, 2.0, 3.0}
		yPred := []float64{2.0, 2.0, 2.0}
		got, err := R2Score(yTrue, yPred)
		if err != nil {
			t.Fatalf("R2Score() error = %v", err)
		}
		if math.Abs(got) > 1e-10 {
			t.Errorf("R2Score() = %v, want 0.0", got)
		}
	})

	t.Run("no variance in yTrue", func(t *testing.T) {
		yTrue := []float64{2.0, 2.0, 2.0}
		yPred := []float64{1.0, 2.0, 3.0}
		if _, err := R2Score(yTrue, yPred); err == nil {
			t.Error("expected error for zero total sum of squares")
		}
	})
}

func TestMAPE(t *testing.T) {
	t.Run("simple case", func(t *testing.T) {
		yTrue := []float64{100.0, 200.0}
		yPred := []float64{110.0, 180.0}
		got, err := MAPE(yTrue, yPred)
		if err != nil {
			t.Fatalf("MAPE() error = %v", err)
		}
		if math.Abs(got-10.0) > 1e-10 {
			t.Errorf("MAPE() = %v, want 10.0", got)
		}
	})

	t.Run("zeros are skipped", func(t *testing.T) {
		yTrue := []float64{0.0, 100.0}
		yPred := []float64{5.0, 110.0}
		got, err := MAPE(yTrue, yPred)
		if err != nil {
			t.Fatalf("MAPE() error = %v", err)
		}
		if math.Abs(got-10.0) > 1e-10 {
			t.Errorf("MAPE() = %v, want 10.0", got)
		}
	})

	t.Run("all zeros", func(t *testing.T) {
		if _, err := MAPE([]float64{0, 0}, []float64{1, 2}); err == nil {
			t.Error("expected error when every yTrue is zero")
		}
	})
}
