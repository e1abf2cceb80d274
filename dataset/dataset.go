// Package dataset provides the immutable, column-typed table the resampling
// harness operates on.
//
// A Dataset is an ordered sequence of records with named columns of numeric,
// categorical, or time values. Columns are added during construction; after
// that the harness only ever reads it. Analysis and assessment sets are
// derived with Subset, which copies the selected rows so no split can alias
// another's data.
package dataset

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"

	"github.com/mardan-mirzaguliyev/tmwr-code-note/pkg/errors"
)

// ColumnType identifies the value type of a column.
type ColumnType int

const (
	// Numeric is a float64-valued column.
	Numeric ColumnType = iota
	// Categorical is a string-labeled column.
	Categorical
	// Time is a time.Time-valued column.
	Time
)

// String returns the string representation of the column type.
func (t ColumnType) String() string {
	switch t {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

type column struct {
	name   string
	ctype  ColumnType
	floats []float64
	labels []string
	times  []time.Time
}

// Dataset is an ordered collection of records with named, typed columns.
type Dataset struct {
	nRows int
	cols  []column
	index map[string]int
}

// New creates an empty dataset with capacity for nRows records per column.
func New(nRows int) (*Dataset, error) {
	if nRows < 1 {
		return nil, errors.NewValidationError("nRows", "must be at least 1", nRows)
	}
	return &Dataset{
		nRows: nRows,
		index: make(map[string]int),
	}, nil
}

func (d *Dataset) addColumn(c column) error {
	if c.name == "" {
		return errors.NewValidationError("name", "must not be empty", c.name)
	}
	if _, exists := d.index[c.name]; exists {
		return errors.NewValidationError("name", "column already exists", c.name)
	}
	d.index[c.name] = len(d.cols)
	d.cols = append(d.cols, c)
	return nil
}

// AddNumeric adds a float64 column. The values are copied.
func (d *Dataset) AddNumeric(name string, values []float64) error {
	if len(values) != d.nRows {
		return errors.NewDimensionError("Dataset.AddNumeric", d.nRows, len(values), 0)
	}
	floats := make([]float64, len(values))
	copy(floats, values)
	return d.addColumn(column{name: name, ctype: Numeric, floats: floats})
}

// AddCategorical adds a string-labeled column. The values are copied.
func (d *Dataset) AddCategorical(name string, values []string) error {
	if len(values) != d.nRows {
		return errors.NewDimensionError("Dataset.AddCategorical", d.nRows, len(values), 0)
	}
	labels := make([]string, len(values))
	copy(labels, values)
	return d.addColumn(column{name: name, ctype: Categorical, labels: labels})
}

// AddTime adds a time.Time column. The values are copied.
func (d *Dataset) AddTime(name string, values []time.Time) error {
	if len(values) != d.nRows {
		return errors.NewDimensionError("Dataset.AddTime", d.nRows, len(values), 0)
	}
	times := make([]time.Time, len(values))
	copy(times, values)
	return d.addColumn(column{name: name, ctype: Time, times: times})
}

// NumRows returns the number of records.
func (d *Dataset) NumRows() int { return d.nRows }

// NumCols returns the number of columns.
func (d *Dataset) NumCols() int { return len(d.cols) }

// Names returns the column names in insertion order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.name
	}
	return names
}

// Has reports whether a column with the given name exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Type returns the type of the named column.
func (d *Dataset) Type(name string) (ColumnType, error) {
	i, ok := d.index[name]
	if !ok {
		return 0, errors.NewValueError("Dataset.Type", fmt.Sprintf("unknown column '%s'", name))
	}
	return d.cols[i].ctype, nil
}

func (d *Dataset) col(op, name string, want ColumnType) (*column, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, errors.NewValueError(op, fmt.Sprintf("unknown column '%s'", name))
	}
	c := &d.cols[i]
	if c.ctype != want {
		return nil, errors.NewValueError(op, fmt.Sprintf("column '%s' is %s, not %s", name, c.ctype, want))
	}
	return c, nil
}

// Numeric returns a copy of the named numeric column.
func (d *Dataset) Numeric(name string) ([]float64, error) {
	c, err := d.col("Dataset.Numeric", name, Numeric)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(c.floats))
	copy(out, c.floats)
	return out, nil
}

// Categorical returns a copy of the named categorical column.
func (d *Dataset) Categorical(name string) ([]string, error) {
	c, err := d.col("Dataset.Categorical", name, Categorical)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out, nil
}

// Times returns a copy of the named time column.
func (d *Dataset) Times(name string) ([]time.Time, error) {
	c, err := d.col("Dataset.Times", name, Time)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(c.times))
	copy(out, c.times)
	return out, nil
}

// Subset returns a new dataset containing the given rows, in the given order.
// Rows are copied; mutating the subset's source has no effect on it.
func (d *Dataset) Subset(indices []int) (*Dataset, error) {
	if len(indices) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Dataset.Subset")
	}
	for _, idx := range indices {
		if idx < 0 || idx >= d.nRows {
			return nil, errors.NewValueError("Dataset.Subset", fmt.Sprintf("row index %d out of range [0, %d)", idx, d.nRows))
		}
	}

	sub := &Dataset{
		nRows: len(indices),
		cols:  make([]column, len(d.cols)),
		index: make(map[string]int, len(d.cols)),
	}
	for ci, c := range d.cols {
		nc := column{name: c.name, ctype: c.ctype}
		switch c.ctype {
		case Numeric:
			nc.floats = make([]float64, len(indices))
			for i, idx := range indices {
				nc.floats[i] = c.floats[idx]
			}
		case Categorical:
			nc.labels = make([]string, len(indices))
			for i, idx := range indices {
				nc.labels[i] = c.labels[idx]
			}
		case Time:
			nc.times = make([]time.Time, len(indices))
			for i, idx := range indices {
				nc.times[i] = c.times[idx]
			}
		}
		sub.cols[ci] = nc
		sub.index[c.name] = ci
	}
	return sub, nil
}

// Matrix exports the named numeric columns as a dense matrix with one row per
// record, in column-name order as given. With no names, all numeric columns
// are exported in insertion order. The matrix is a copy.
func (d *Dataset) Matrix(names ...string) (*mat.Dense, error) {
	if len(names) == 0 {
		for _, c := range d.cols {
			if c.ctype == Numeric {
				names = append(names, c.name)
			}
		}
	}
	if len(names) == 0 {
		return nil, errors.NewValueError("Dataset.Matrix", "dataset has no numeric columns")
	}

	m := mat.NewDense(d.nRows, len(names), nil)
	for j, name := range names {
		c, err := d.col("Dataset.Matrix", name, Numeric)
		if err != nil {
			return nil, err
		}
		for i := 0; i < d.nRows; i++ {
			m.Set(i, j, c.floats[i])
		}
	}
	return m, nil
}

// QuantileBin assigns each value to one of bins quantile intervals and returns
// the interval labels ("q1".."qN"). This is how a numeric outcome becomes a
// stratification variable: bin it, then stratify on the labels.
func QuantileBin(values []float64, bins int) ([]string, error) {
	if bins < 2 {
		return nil, errors.NewValidationError("bins", "must be at least 2", bins)
	}
	if len(values) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "QuantileBin")
	}

	// Interior cut points at i/bins percentiles.
	cuts := make([]float64, bins-1)
	for i := 1; i < bins; i++ {
		p, err := stats.Percentile(stats.Float64Data(values), float64(i)/float64(bins)*100)
		if err != nil {
			return nil, errors.Wrap(err, "QuantileBin")
		}
		cuts[i-1] = p
	}

	labels := make([]string, len(values))
	for i, v := range values {
		bin := 0
		for _, cut := range cuts {
			if v > cut {
				bin++
			}
		}
		labels[i] = fmt.Sprintf("q%d", bin+1)
	}
	return labels, nil
}
