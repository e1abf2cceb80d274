// Package model defines the capability contract between the resampling
// harness and caller-supplied model procedures.
//
// A model procedure is anything that can fit itself to an analysis set and
// hand back an opaque trained handle; the handle is anything that can produce
// one prediction per assessment row. The harness never looks inside either.
package model

import (
	"github.com/mardan-mirzaguliyev/tmwr-code-note/dataset"
)

// Fitted is the opaque handle returned by a fit. Predict must return one
// prediction per assessment row, in row order.
type Fitted interface {
	Predict(assessment *dataset.Dataset) ([]float64, error)
}

// Procedure is the contract a model plugs into the harness with. Fit must be
// a pure function of the analysis rows it is given; no state may leak
// between folds.
type Procedure interface {
	Fit(analysis *dataset.Dataset) (Fitted, error)
}

// ProcedureFunc adapts a plain function to the Procedure interface.
type ProcedureFunc func(analysis *dataset.Dataset) (Fitted, error)

// Fit implements Procedure.
func (f ProcedureFunc) Fit(analysis *dataset.Dataset) (Fitted, error) {
	return f(analysis)
}

// FittedFunc adapts a plain function to the Fitted interface.
type FittedFunc func(assessment *dataset.Dataset) ([]float64, error)

// Predict implements Fitted.
func (f FittedFunc) Predict(assessment *dataset.Dataset) ([]float64, error) {
	return f(assessment)
}

// Pair builds a Procedure from separate fit and predict functions, threading
// the fit result to every predict call as a typed handle.
//
// Example:
//
//	proc := model.Pair(
//	    func(analysis *dataset.Dataset) (float64, error) {
//	        y, err := analysis.Numeric("price")
//	        if err != nil {
//	            return 0, err
//	        }
//	        return mean(y), nil
//	    },
//	    func(m float64, assessment *dataset.Dataset) ([]float64, error) {
//	        out := make([]float64, assessment.NumRows())
//	        for i := range out {
//	            out[i] = m
//	        }
//	        return out, nil
//	    },
//	)
func Pair[H any](
	fit func(analysis *dataset.Dataset) (H, error),
	predict func(handle H, assessment *dataset.Dataset) ([]float64, error),
) Procedure {
	return ProcedureFunc(func(analysis *dataset.Dataset) (Fitted, error) {
		handle, err := fit(analysis)
		if err != nil {
			return nil, err
		}
		return FittedFunc(func(assessment *dataset.Dataset) ([]float64, error) {
			return predict(handle, assessment)
		}), nil
	})
}
