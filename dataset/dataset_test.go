package dataset

import (
	"math"
	"testing"
	"time"
)

func mustDataset(t *testing.T, n int) *Dataset {
	t.Helper()
	d, err := New(n)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", n, err)
	}
	return d
}

func TestAddAndAccessColumns(t *testing.T) {
	d := mustDataset(t, 3)

	if err := d.AddNumeric("price", []float64{100, 200, 300}); err != nil {
		t.Fatalf("AddNumeric failed: %v", err)
	}
	if err := d.AddCategorical("neighborhood", []string{"north", "south", "north"}); err != nil {
		t.Fatalf("AddCategorical failed: %v", err)
	}
	sold := []time.Time{
		time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := d.AddTime("sold", sold); err != nil {
		t.Fatalf("AddTime failed: %v", err)
	}

	if d.NumRows() != 3 || d.NumCols() != 3 {
		t.Errorf("dims = (%d, %d), want (3, 3)", d.NumRows(), d.NumCols())
	}

	price, err := d.Numeric("price")
	if err != nil {
		t.Fatalf("Numeric failed: %v", err)
	}
	if price[1] != 200 {
		t.Errorf("price[1] = %v, want 200", price[1])
	}

	// Accessors return copies; mutating one must not touch the dataset.
	price[1] = -1
	again, _ := d.Numeric("price")
	if again[1] != 200 {
		t.Error("Numeric returned a view into internal storage")
	}

	if ct, _ := d.Type("neighborhood"); ct != Categorical {
		t.Errorf("Type(neighborhood) = %v, want Categorical", ct)
	}
}

func TestAddColumnErrors(t *testing.T) {
	d := mustDataset(t, 2)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"wrong length", func() error { return d.AddNumeric("x", []float64{1, 2, 3}) }},
		{"empty name", func() error { return d.AddNumeric("", []float64{1, 2}) }},
		{"duplicate name", func() error {
			if err := d.AddNumeric("dup", []float64{1, 2}); err != nil {
				return err
			}
			return d.AddCategorical("dup", []string{"a", "b"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSubset(t *testing.T) {
	d := mustDataset(t, 5)
	if err := d.AddNumeric("y", []float64{10, 11, 12, 13, 14}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddCategorical("g", []string{"a", "b", "a", "b", "a"}); err != nil {
		t.Fatal(err)
	}

	sub, err := d.Subset([]int{4, 0, 2})
	if err != nil {
		t.Fatalf("Subset failed: %v", err)
	}
	if sub.NumRows() != 3 {
		t.Fatalf("subset rows = %d, want 3", sub.NumRows())
	}

	y, _ := sub.Numeric("y")
	want := []float64{14, 10, 12}
	for i := range want {
		if y[i] != want[i] {
			t.Errorf("y[%d] = %v, want %v (row order must be preserved)", i, y[i], want[i])
		}
	}

	g, _ := sub.Categorical("g")
	if g[0] != "a" || g[1] != "a" || g[2] != "a" {
		t.Errorf("g = %v, want [a a a]", g)
	}

	if _, err := d.Subset([]int{5}); err == nil {
		t.Error("out-of-range index should fail")
	}
	if _, err := d.Subset(nil); err == nil {
		t.Error("empty index set should fail")
	}
}

func TestMatrix(t *testing.T) {
	d := mustDataset(t, 2)
	if err := d.AddNumeric("a", []float64{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddCategorical("skip", []string{"x", "y"}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddNumeric("b", []float64{3, 4}); err != nil {
		t.Fatal(err)
	}

	m, err := d.Matrix()
	if err != nil {
		t.Fatalf("Matrix failed: %v", err)
	}
	r, c := m.Dims()
	if r != 2 || c != 2 {
		t.Fatalf("dims = (%d, %d), want (2, 2)", r, c)
	}
	if m.At(1, 1) != 4 {
		t.Errorf("m[1,1] = %v, want 4", m.At(1, 1))
	}

	if _, err := d.Matrix("skip"); err == nil {
		t.Error("categorical column in Matrix should fail")
	}
}

func TestQuantileBin(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}

	labels, err := QuantileBin(values, 4)
	if err != nil {
		t.Fatalf("QuantileBin failed: %v", err)
	}

	counts := map[string]int{}
	for _, l := range labels {
		counts[l]++
	}
	if len(counts) != 4 {
		t.Fatalf("got %d distinct bins, want 4: %v", len(counts), counts)
	}
	for label, n := range counts {
		if math.Abs(float64(n)-25) > 2 {
			t.Errorf("bin %s has %d members, want ~25", label, n)
		}
	}

	// Bins must be ordered: the smallest value lands in q1, the largest in q4.
	if labels[0] != "q1" {
		t.Errorf("labels[0] = %s, want q1", labels[0])
	}
	if labels[99] != "q4" {
		t.Errorf("labels[99] = %s, want q4", labels[99])
	}

	if _, err := QuantileBin(values, 1); err == nil {
		t.Error("bins < 2 should fail")
	}
	if _, err := QuantileBin(nil, 4); err == nil {
		t.Error("empty values should fail")
	}
}
