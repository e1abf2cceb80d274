// Package log defines standard attribute keys for resampling operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in the library. Using these standard keys enables
// better log analysis, monitoring, and debugging of resampling runs.
//
// The keys follow a hierarchical naming convention (e.g. "resample.fold",
// "data.samples") to enable structured log analysis and filtering.

package log

// Operation Context
// These attributes identify the component and operation being performed.
const (
	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "resample.runner", "preprocessing", "metrics"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "summarize", "split"
	OperationKey = "ml.operation"
)

// Resampling Context
// These attributes locate a log line within a resampling run.
const (
	// RepeatKey is the zero-based repeat index of a repeated cross-validation pass.
	RepeatKey = "resample.repeat"

	// FoldKey is the zero-based fold index within a repeat.
	FoldKey = "resample.fold"

	// MetricKey names the metric a value or failure refers to.
	// Examples: "rmse", "mae", "accuracy"
	MetricKey = "resample.metric"

	// WorkersKey is the number of parallel workers executing folds.
	WorkersKey = "resample.workers"

	// StateKey is the run state after a transition.
	// Values: "configured", "running", "complete", "all_failed", "cancelled"
	StateKey = "resample.state"
)

// Data Shape
// These attributes describe the data flowing through a split.
const (
	// SamplesKey indicates the number of records in the dataset.
	SamplesKey = "data.samples"

	// AnalysisSizeKey is the analysis (training partition) row count of one split.
	AnalysisSizeKey = "data.analysis_size"

	// AssessmentSizeKey is the assessment (held-out partition) row count of one split.
	AssessmentSizeKey = "data.assessment_size"
)

// Performance
const (
	// DurationMsKey is the wall-clock duration of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
