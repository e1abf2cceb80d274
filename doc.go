// Package tmwr provides a resampling and evaluation harness for Go,
// built around k-fold cross-validation, repeated cross-validation, and
// bootstrap resampling.
//
// The library separates the three concerns of an honest model
// assessment: partitioning records into analysis/assessment splits,
// running a user-supplied fit/predict procedure over every split, and
// aggregating per-fold metric values into a mean and standard error.
//
// # Quick Start
//
// Ten-fold cross-validation of a model over a column-oriented dataset:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/mardan-mirzaguliyev/tmwr-code-note/dataset"
//	    "github.com/mardan-mirzaguliyev/tmwr-code-note/metrics"
//	    "github.com/mardan-mirzaguliyev/tmwr-code-note/resample"
//	)
//
//	func main() {
//	    ds, _ := dataset.New(len(prices))
//	    _ = ds.AddNumeric("sale_price", prices)
//	    _ = ds.AddNumeric("gr_liv_area", areas)
//
//	    folds, err := resample.MakeFolds(ds.NumRows(), 10, 1, 42, nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    r, err := resample.New(ds, folds, "sale_price", myProcedure,
//	        map[string]resample.MetricFunc{"rmse": metrics.RMSE})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    res, err := r.Run(context.Background())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, s := range res.Summarize() {
//	        fmt.Printf("%s: %.4f ± %.4f (n=%d)\n", s.Metric, s.Mean, s.StdErr, s.N)
//	    }
//	}
//
// # Packages
//
//   - dataset: column-oriented record container with row subsetting
//   - resample: fold construction, initial splits, bootstraps, and the
//     fit/evaluate runner
//   - metrics: regression and classification scoring functions
//   - preprocessing: scalers fit on analysis sets only
//   - core/model: the Procedure and Fitted interfaces
//
// # Leakage
//
// The runner guarantees that a procedure's Fit only ever receives the
// analysis subset of a split. Preprocessing that estimates statistics
// (such as preprocessing.StandardScaler) must be fit inside the
// procedure, on the analysis set, so assessment rows never influence
// the model that scores them.
package tmwr
