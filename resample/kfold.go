// Package resample implements k-fold cross-validation resampling with
// aggregated metric computation.
//
// A Splitter partitions record indices into analysis/assessment pairs; the
// Resampler fits a caller-supplied model procedure on each analysis set,
// scores it on the matching assessment set, and the Result aggregates the
// per-fold metric values into means and standard errors. Assessment rows are
// never visible to the fit step.
package resample

import (
	"math/rand/v2"
	"sort"

	"github.com/mardan-mirzaguliyev/tmwr-code-note/pkg/errors"
)

// Split is one resampling iteration: the rows a model is fit on and the
// held-out rows it is scored on. Analysis and Assessment are disjoint.
type Split struct {
	Repeat     int
	Fold       int
	Analysis   []int
	Assessment []int
}

// Splitter produces the full ordered set of splits for a resampling run.
type Splitter interface {
	Splits() []Split
}

// FoldAssignment maps every record to a fold id per repeat. Within one repeat
// the folds are disjoint, cover all records, and differ in size by at most
// one record.
type FoldAssignment struct {
	NRecords int
	K        int
	Repeats  int

	// assign[repeat][record] = fold id
	assign [][]int
}

// MakeFolds assigns nRecords records to k folds, independently for each of
// repeats passes. The assignment is deterministic given seed; each repeat
// uses its own random stream so repeats differ from one another.
//
// If strata is non-nil it must hold one label per record; the
// permutation-and-block assignment is then performed independently within
// each stratum, so every fold receives a proportional share of each stratum.
// Every stratum must have at least k members.
func MakeFolds(nRecords, k, repeats int, seed int64, strata []string) (*FoldAssignment, error) {
	if k < 2 {
		return nil, errors.NewValidationError("k", "must be at least 2", k)
	}
	if k > nRecords {
		return nil, errors.NewValidationError("k", "must not exceed the number of records", k)
	}
	if repeats < 1 {
		return nil, errors.NewValidationError("repeats", "must be at least 1", repeats)
	}
	if strata != nil && len(strata) != nRecords {
		return nil, errors.NewDimensionError("MakeFolds", nRecords, len(strata), 0)
	}

	// Group record indices by stratum, in sorted label order so the
	// assignment does not depend on map iteration order.
	var groups [][]int
	if strata == nil {
		all := make([]int, nRecords)
		for i := range all {
			all[i] = i
		}
		groups = [][]int{all}
	} else {
		byLabel := make(map[string][]int)
		for i, label := range strata {
			byLabel[label] = append(byLabel[label], i)
		}
		labels := make([]string, 0, len(byLabel))
		for label := range byLabel {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			if len(byLabel[label]) < k {
				return nil, errors.NewInsufficientStratumError(label, len(byLabel[label]), k)
			}
			groups = append(groups, byLabel[label])
		}
	}

	fa := &FoldAssignment{
		NRecords: nRecords,
		K:        k,
		Repeats:  repeats,
		assign:   make([][]int, repeats),
	}

	for r := 0; r < repeats; r++ {
		rng := rand.New(rand.NewPCG(uint64(seed), uint64(r)))
		row := make([]int, nRecords)

		// The remainder records of each stratum rotate across folds so the
		// overall fold sizes stay within one record of balanced.
		offset := 0
		for _, group := range groups {
			assignBlocks(rng, group, k, offset, row)
			offset = (offset + len(group)%k) % k
		}
		fa.assign[r] = row
	}
	return fa, nil
}

// assignBlocks shuffles a copy of indices and deals consecutive blocks to
// folds 0..k-1, writing the fold id of each record into out. Folds in the
// rotated remainder window get one extra record.
func assignBlocks(rng *rand.Rand, indices []int, k, offset int, out []int) {
	perm := make([]int, len(indices))
	copy(perm, indices)
	rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})

	base := len(perm) / k
	remainder := len(perm) % k

	cur := 0
	for f := 0; f < k; f++ {
		size := base
		if ((f-offset)%k+k)%k < remainder {
			size++
		}
		for j := 0; j < size; j++ {
			out[perm[cur]] = f
			cur++
		}
	}
}

// FoldOf returns the fold id of a record within a repeat.
func (fa *FoldAssignment) FoldOf(repeat, record int) int {
	return fa.assign[repeat][record]
}

// Split derives the analysis/assessment index pair for one fold of one
// repeat. Indices are in ascending record order.
func (fa *FoldAssignment) Split(repeat, fold int) Split {
	sp := Split{Repeat: repeat, Fold: fold}
	for record, f := range fa.assign[repeat] {
		if f == fold {
			sp.Assessment = append(sp.Assessment, record)
		} else {
			sp.Analysis = append(sp.Analysis, record)
		}
	}
	return sp
}

// Splits returns every (repeat, fold) split, ordered by repeat then fold.
func (fa *FoldAssignment) Splits() []Split {
	splits := make([]Split, 0, fa.Repeats*fa.K)
	for r := 0; r < fa.Repeats; r++ {
		for f := 0; f < fa.K; f++ {
			splits = append(splits, fa.Split(r, f))
		}
	}
	return splits
}

// NumRecords returns the number of records the assignment was built for.
func (fa *FoldAssignment) NumRecords() int { return fa.NRecords }
