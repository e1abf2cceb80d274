package resample

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mardan-mirzaguliyev/tmwr-code-note/core/model"
	"github.com/mardan-mirzaguliyev/tmwr-code-note/dataset"
	"github.com/mardan-mirzaguliyev/tmwr-code-note/pkg/errors"
	"github.com/mardan-mirzaguliyev/tmwr-code-note/pkg/log"
)

// State is the lifecycle state of a resampling run. Transitions only move
// forward: Configured -> Running -> one of the terminal states.
type State int32

const (
	// StateConfigured means folds are generated but the run has not started.
	StateConfigured State = iota
	// StateRunning means the fold loop is executing.
	StateRunning
	// StateComplete means all folds were attempted and results are frozen.
	StateComplete
	// StateAllFailed means every fold failed; there are no usable results.
	StateAllFailed
	// StateCancelled means the run was cancelled; collected results remain
	// available for partial analysis.
	StateCancelled
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	case StateAllFailed:
		return "all_failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// MetricFunc scores one fold: given the assessment set's true outcome values
// and the model's predictions in the same row order, it returns a scalar.
type MetricFunc func(yTrue, yPred []float64) (float64, error)

// MetricResult is one scored metric for one fold of one repeat.
type MetricResult struct {
	Repeat int
	Fold   int
	Metric string
	Value  float64
}

// FoldFailure records a fold whose fit, predict, or scoring step failed.
// Failures do not stop the run; they are collected on this side-channel.
type FoldFailure struct {
	Repeat int
	Fold   int
	Err    error
}

// Resampler executes one resampling run: fit on each analysis set, predict
// and score on each assessment set. A Resampler is single-use; construct a
// new one (even with the same seed) to resample again.
type Resampler struct {
	ds      *dataset.Dataset
	splits  Splitter
	proc    model.Procedure
	outcome string

	metricNames []string
	metricFns   map[string]MetricFunc

	workers int
	logger  *slog.Logger

	state atomic.Int32
}

// Option configures a Resampler.
type Option func(*Resampler)

// WithWorkers bounds the number of folds executed in parallel. Each worker
// holds one analysis set in memory, so peak memory scales with this count;
// callers with large datasets should bound it accordingly. Default is
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(r *Resampler) {
		if n > 0 {
			r.workers = n
		}
	}
}

// New configures a resampling run over ds. The outcome column must be
// numeric; its assessment-set values are what every metric receives as
// yTrue. metricFns maps metric names to scoring functions; results are
// reported in sorted metric-name order.
func New(ds *dataset.Dataset, splitter Splitter, outcome string, proc model.Procedure, metricFns map[string]MetricFunc, opts ...Option) (*Resampler, error) {
	if ds == nil {
		return nil, errors.NewValidationError("dataset", "must not be nil", nil)
	}
	if splitter == nil {
		return nil, errors.NewValidationError("splitter", "must not be nil", nil)
	}
	if proc == nil {
		return nil, errors.NewValidationError("procedure", "must not be nil", nil)
	}
	if len(metricFns) == 0 {
		return nil, errors.NewValidationError("metrics", "at least one metric is required", len(metricFns))
	}

	ct, err := ds.Type(outcome)
	if err != nil {
		return nil, errors.Wrap(err, "resample.New")
	}
	if ct != dataset.Numeric {
		return nil, errors.NewValidationError("outcome", "column must be numeric", ct.String())
	}

	// A splitter built for a different record count would silently score the
	// wrong rows; reject it up front when the splitter knows its size.
	if sized, ok := splitter.(interface{ NumRecords() int }); ok {
		if sized.NumRecords() != ds.NumRows() {
			return nil, errors.NewDimensionError("resample.New", ds.NumRows(), sized.NumRecords(), 0)
		}
	}

	names := make([]string, 0, len(metricFns))
	for name, fn := range metricFns {
		if fn == nil {
			return nil, errors.NewValidationError("metrics", "metric function must not be nil", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	r := &Resampler{
		ds:          ds,
		splits:      splitter,
		proc:        proc,
		outcome:     outcome,
		metricNames: names,
		metricFns:   metricFns,
		workers:     runtime.NumCPU(),
		logger:      log.GetLoggerWithName("resample.runner"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// State returns the current lifecycle state of the run.
func (r *Resampler) State() State {
	return State(r.state.Load())
}

// Run executes the fold loop. Fold-level failures are recorded in the
// result's failure side-channel and do not stop the run; only cancellation
// (checked between folds, not mid-fold) and a fully failed run surface as
// errors. In both of those cases the partial Result is still returned.
func (r *Resampler) Run(ctx context.Context) (*Result, error) {
	if !r.state.CompareAndSwap(int32(StateConfigured), int32(StateRunning)) {
		return nil, errors.WithStack(errors.ErrAlreadyRun)
	}

	splits := r.splits.Splits()
	if len(splits) == 0 {
		r.state.Store(int32(StateAllFailed))
		return nil, errors.NewValidationError("splitter", "produced no splits", 0)
	}

	start := time.Now()
	r.logger.Info("resampling started",
		log.SamplesKey, r.ds.NumRows(),
		log.WorkersKey, r.workers,
		"splits", len(splits),
	)

	var (
		mu       sync.Mutex
		results  []MetricResult
		failures []FoldFailure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, sp := range splits {
		g.Go(func() error {
			// Cooperative cancellation point between folds.
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			rows, fails := r.evalSplit(sp)

			mu.Lock()
			results = append(results, rows...)
			failures = append(failures, fails...)
			mu.Unlock()
			return nil
		})
	}
	waitErr := g.Wait()

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Repeat != b.Repeat {
			return a.Repeat < b.Repeat
		}
		if a.Fold != b.Fold {
			return a.Fold < b.Fold
		}
		return a.Metric < b.Metric
	})
	sort.Slice(failures, func(i, j int) bool {
		a, b := failures[i], failures[j]
		if a.Repeat != b.Repeat {
			return a.Repeat < b.Repeat
		}
		return a.Fold < b.Fold
	})

	out := &Result{
		Metrics:  r.metricNames,
		Results:  results,
		Failures: failures,
	}

	if waitErr != nil {
		r.state.Store(int32(StateCancelled))
		out.State = StateCancelled
		r.logger.Info("resampling cancelled",
			log.StateKey, StateCancelled.String(),
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
		return out, errors.Wrap(waitErr, "resampling cancelled")
	}

	// All-failed means no fold produced a single metric value.
	if len(results) == 0 {
		r.state.Store(int32(StateAllFailed))
		out.State = StateAllFailed
		var first error
		if len(failures) > 0 {
			first = failures[0].Err
		}
		return out, errors.NewAllFoldsFailedError(len(splits), first)
	}

	r.state.Store(int32(StateComplete))
	out.State = StateComplete
	r.logger.Info("resampling complete",
		log.StateKey, StateComplete.String(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
		"failures", len(failures),
	)
	return out, nil
}

// evalSplit runs fit, predict, and every metric for a single split. Errors
// are returned as FoldFailure records, never propagated.
func (r *Resampler) evalSplit(sp Split) ([]MetricResult, []FoldFailure) {
	fail := func(err error) ([]MetricResult, []FoldFailure) {
		r.logger.Warn("fold failed",
			log.RepeatKey, sp.Repeat,
			log.FoldKey, sp.Fold,
			log.ErrAttr(err),
		)
		return nil, []FoldFailure{{Repeat: sp.Repeat, Fold: sp.Fold, Err: err}}
	}

	analysis, err := r.ds.Subset(sp.Analysis)
	if err != nil {
		return fail(errors.Wrap(err, "analysis set"))
	}
	assessment, err := r.ds.Subset(sp.Assessment)
	if err != nil {
		return fail(errors.Wrap(err, "assessment set"))
	}

	r.logger.Debug("evaluating fold",
		log.RepeatKey, sp.Repeat,
		log.FoldKey, sp.Fold,
		log.AnalysisSizeKey, analysis.NumRows(),
		log.AssessmentSizeKey, assessment.NumRows(),
	)

	// The fit step only ever sees the analysis subset; fit and predict are
	// caller code, so panics are converted to fold failures.
	var fitted model.Fitted
	err = errors.SafeExecute(fmt.Sprintf("fit repeat %d fold %d", sp.Repeat, sp.Fold), func() error {
		f, fitErr := r.proc.Fit(analysis)
		fitted = f
		return fitErr
	})
	if err != nil {
		return fail(errors.Wrap(err, "fit"))
	}

	var preds []float64
	err = errors.SafeExecute(fmt.Sprintf("predict repeat %d fold %d", sp.Repeat, sp.Fold), func() error {
		p, predErr := fitted.Predict(assessment)
		preds = p
		return predErr
	})
	if err != nil {
		return fail(errors.Wrap(err, "predict"))
	}
	if len(preds) != assessment.NumRows() {
		return fail(errors.NewDimensionError("predict", assessment.NumRows(), len(preds), 0))
	}

	yTrue, err := assessment.Numeric(r.outcome)
	if err != nil {
		return fail(errors.Wrap(err, "outcome"))
	}

	var (
		rows     []MetricResult
		failures []FoldFailure
	)
	for _, name := range r.metricNames {
		value, metricErr := r.metricFns[name](yTrue, preds)
		if metricErr != nil {
			r.logger.Warn("metric failed",
				log.RepeatKey, sp.Repeat,
				log.FoldKey, sp.Fold,
				log.MetricKey, name,
				log.ErrAttr(metricErr),
			)
			failures = append(failures, FoldFailure{
				Repeat: sp.Repeat,
				Fold:   sp.Fold,
				Err:    errors.Wrapf(metricErr, "metric %s", name),
			})
			continue
		}
		rows = append(rows, MetricResult{
			Repeat: sp.Repeat,
			Fold:   sp.Fold,
			Metric: name,
			Value:  value,
		})
	}
	return rows, failures
}
