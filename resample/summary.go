package resample

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/mardan-mirzaguliyev/tmwr-code-note/pkg/errors"
)

// Result is the frozen outcome of a resampling run: the per-fold metric
// table, the failure side-channel, and the terminal state. Summaries are
// derived on demand and can be recomputed at will.
type Result struct {
	State State

	// Metrics are the metric names the run was configured with, sorted.
	Metrics []string

	// Results holds one row per (repeat, fold, metric), ordered.
	Results []MetricResult

	// Failures lists the folds (or single metrics within a fold) that
	// failed, ordered by repeat then fold.
	Failures []FoldFailure
}

// MetricSummary aggregates one metric across all contributing folds.
// With no contributing folds, Mean and StdErr are NaN; with a single
// contributing fold, StdErr is NaN (the sample standard deviation is
// undefined at n = 1).
type MetricSummary struct {
	Metric string
	Mean   float64
	StdErr float64
	N      int
}

// RepeatSummary is the mean of one metric across one repeat's folds, used in
// repeated cross-validation where each repeat is one bias-variance sample.
type RepeatSummary struct {
	Repeat int
	Metric string
	Mean   float64
	N      int
}

// Summarize groups the per-fold values by metric name and reports mean,
// standard error (sample standard deviation over sqrt n), and the
// contributing fold count. Every configured metric gets a row; a metric
// whose every fold failed reports NaN and fires an UndefinedMetricWarning
// instead of dividing by zero.
func (res *Result) Summarize() []MetricSummary {
	grouped := make(map[string][]float64, len(res.Metrics))
	for _, row := range res.Results {
		grouped[row.Metric] = append(grouped[row.Metric], row.Value)
	}

	summaries := make([]MetricSummary, 0, len(res.Metrics))
	for _, name := range res.Metrics {
		values := grouped[name]
		if len(values) == 0 {
			errors.Warn(errors.NewUndefinedMetricWarning(name, "no contributing folds", math.NaN()))
			summaries = append(summaries, MetricSummary{
				Metric: name,
				Mean:   math.NaN(),
				StdErr: math.NaN(),
			})
			continue
		}

		mean := stat.Mean(values, nil)
		stderr := stat.StdDev(values, nil) / math.Sqrt(float64(len(values)))
		summaries = append(summaries, MetricSummary{
			Metric: name,
			Mean:   mean,
			StdErr: stderr,
			N:      len(values),
		})
	}
	return summaries
}

// SummarizeByRepeat reports each metric's mean within each repeat, ordered
// by repeat then metric name. Repeats without a single contributing fold for
// a metric are omitted.
func (res *Result) SummarizeByRepeat() []RepeatSummary {
	type key struct {
		repeat int
		metric string
	}
	grouped := make(map[key][]float64)
	for _, row := range res.Results {
		k := key{repeat: row.Repeat, metric: row.Metric}
		grouped[k] = append(grouped[k], row.Value)
	}

	keys := make([]key, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].repeat != keys[j].repeat {
			return keys[i].repeat < keys[j].repeat
		}
		return keys[i].metric < keys[j].metric
	})

	summaries := make([]RepeatSummary, 0, len(keys))
	for _, k := range keys {
		values := grouped[k]
		summaries = append(summaries, RepeatSummary{
			Repeat: k.repeat,
			Metric: k.metric,
			Mean:   stat.Mean(values, nil),
			N:      len(values),
		})
	}
	return summaries
}
