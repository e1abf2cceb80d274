package resample

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/mardan-mirzaguliyev/tmwr-code-note/pkg/errors"
)

// InitialSplit partitions record indices into a single train/test pair, with
// prop giving the training share. With strata, the split is performed
// independently within each stratum so the test set preserves stratum
// proportions. Both index slices come back in ascending order.
func InitialSplit(nRecords int, prop float64, seed int64, strata []string) (train, test []int, err error) {
	if nRecords < 2 {
		return nil, nil, errors.NewValidationError("nRecords", "must be at least 2", nRecords)
	}
	if prop <= 0 || prop >= 1 {
		return nil, nil, errors.NewValidationError("prop", "must be strictly between 0 and 1", prop)
	}
	if strata != nil && len(strata) != nRecords {
		return nil, nil, errors.NewDimensionError("InitialSplit", nRecords, len(strata), 0)
	}

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
			if len(byLabel[label]) < 2 {
				return nil, nil, errors.NewInsufficientStratumError(label, len(byLabel[label]), 2)
			}
			groups = append(groups, byLabel[label])
		}
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for _, group := range groups {
		perm := make([]int, len(group))
		copy(perm, group)
		rng.Shuffle(len(perm), func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})

		// Keep at least one record on each side of the split.
		nTrain := int(math.Round(prop * float64(len(perm))))
		if nTrain < 1 {
			nTrain = 1
		}
		if nTrain > len(perm)-1 {
			nTrain = len(perm) - 1
		}

		train = append(train, perm[:nTrain]...)
		test = append(test, perm[nTrain:]...)
	}

	sort.Ints(train)
	sort.Ints(test)
	return train, test, nil
}

// BootstrapSet is a Splitter producing bootstrap resamples: each analysis set
// is nRecords draws with replacement, and the assessment set is the
// out-of-bag records that were never drawn.
type BootstrapSet struct {
	NRecords int
	Times    int
	Seed     int64
}

// Bootstraps creates a bootstrap Splitter with times resamples.
func Bootstraps(nRecords, times int, seed int64) (*BootstrapSet, error) {
	if nRecords < 1 {
		return nil, errors.NewValidationError("nRecords", "must be at least 1", nRecords)
	}
	if times < 1 {
		return nil, errors.NewValidationError("times", "must be at least 1", times)
	}
	return &BootstrapSet{NRecords: nRecords, Times: times, Seed: seed}, nil
}

// Splits generates the bootstrap resamples. All resamples share Repeat 0 and
// are numbered by Fold. An out-of-bag set can be empty for small datasets;
// that surfaces later as the resample's failure, not here.
func (b *BootstrapSet) Splits() []Split {
	splits := make([]Split, 0, b.Times)
	for i := 0; i < b.Times; i++ {
		rng := rand.New(rand.NewPCG(uint64(b.Seed), uint64(i)))

		drawn := make([]bool, b.NRecords)
		analysis := make([]int, b.NRecords)
		for j := range analysis {
			idx := rng.IntN(b.NRecords)
			analysis[j] = idx
			drawn[idx] = true
		}

		var assessment []int
		for idx, d := range drawn {
			if !d {
				assessment = append(assessment, idx)
			}
		}

		splits = append(splits, Split{
			Repeat:     0,
			Fold:       i,
			Analysis:   analysis,
			Assessment: assessment,
		})
	}
	return splits
}

// NumRecords returns the number of records the resamples were built for.
func (b *BootstrapSet) NumRecords() int { return b.NRecords }
