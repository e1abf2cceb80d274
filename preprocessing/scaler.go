package preprocessing

import (
	"fmt"
	"math"

	"github.com/mardan-mirzaguliyev/tmwr-code-note/core/model"
	"github.com/mardan-mirzaguliyev/tmwr-code-note/dataset"
	"github.com/mardan-mirzaguliyev/tmwr-code-note/pkg/errors"
)

// StandardScaler は指定した数値列を平均0、標準偏差1に変換するスケーラー。
// リサンプリングで使う場合は必ずanalysisセットだけでFitし、学習済みの
// 統計量をassessmentセットに適用すること。assessmentセットでFitし直すと
// 評価データの情報がモデルに漏れる。
type StandardScaler struct {
	model.BaseEstimator

	// Columns はスケーリング対象の列名（Fit時に確定）
	Columns []string

	// Mean は各列の平均値
	Mean map[string]float64

	// Scale は各列の標準偏差
	Scale map[string]float64

	// WithMean は平均を引くかどうか (デフォルト: true)
	WithMean bool

	// WithStd は標準偏差で割るかどうか (デフォルト: true)
	WithStd bool
}

// NewStandardScaler は新しいStandardScalerを作成する
//
// パラメータ:
//   - withMean: 平均を引くかどうか
//   - withStd: 標準偏差で割るかどうか
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	err := scaler.Fit(analysis, "lot_area", "gr_liv_area")
//	scaled, err := scaler.Transform(assessment)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewStandardScalerDefault はデフォルト設定でStandardScalerを作成する
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

// Fit は訓練データの指定列から統計情報（平均、標準偏差）を計算する。
// 列を指定しない場合は全数値列が対象になる。
func (s *StandardScaler) Fit(d *dataset.Dataset, columns ...string) error {
	if d == nil || d.NumRows() == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	if len(columns) == 0 {
		for _, name := range d.Names() {
			ct, err := d.Type(name)
			if err != nil {
				return err
			}
			if ct == dataset.Numeric {
				columns = append(columns, name)
			}
		}
	}
	if len(columns) == 0 {
		return errors.NewModelError("StandardScaler.Fit", "no numeric columns", errors.ErrEmptyData)
	}

	mean := make(map[string]float64, len(columns))
	scale := make(map[string]float64, len(columns))

	for _, name := range columns {
		values, err := d.Numeric(name)
		if err != nil {
			return errors.Wrap(err, "StandardScaler.Fit")
		}

		m := 0.0
		if s.WithMean {
			sum := 0.0
			for _, v := range values {
				sum += v
			}
			m = sum / float64(len(values))
		}
		mean[name] = m

		sc := 1.0
		if s.WithStd {
			sumSquares := 0.0
			for _, v := range values {
				diff := v - m
				sumSquares += diff * diff
			}
			sc = math.Sqrt(sumSquares / float64(len(values)))
			// 標準偏差が0に近い場合は1に設定（ゼロ除算を避ける）
			if math.Abs(sc) < 1e-8 {
				sc = 1.0
			}
		}
		scale[name] = sc
	}

	s.Columns = columns
	s.Mean = mean
	s.Scale = scale
	s.SetFitted()
	return nil
}

// Transform は学習済みの統計情報で対象列を標準化した新しいDatasetを返す。
// 対象外の列はそのままコピーされる。
func (s *StandardScaler) Transform(d *dataset.Dataset) (*dataset.Dataset, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}
	if d == nil || d.NumRows() == 0 {
		return nil, errors.NewModelError("StandardScaler.Transform", "empty data", errors.ErrEmptyData)
	}

	scaled := make(map[string]bool, len(s.Columns))
	for _, name := range s.Columns {
		if !d.Has(name) {
			return nil, errors.NewValidationError("column", "missing from dataset", name)
		}
		scaled[name] = true
	}

	out, err := dataset.New(d.NumRows())
	if err != nil {
		return nil, errors.Wrap(err, "StandardScaler.Transform")
	}

	for _, name := range d.Names() {
		ct, err := d.Type(name)
		if err != nil {
			return nil, errors.Wrap(err, "StandardScaler.Transform")
		}
		switch ct {
		case dataset.Numeric:
			values, err := d.Numeric(name)
			if err != nil {
				return nil, errors.Wrap(err, "StandardScaler.Transform")
			}
			if scaled[name] {
				m, sc := s.Mean[name], s.Scale[name]
				for i, v := range values {
					values[i] = (v - m) / sc
				}
			}
			if err := out.AddNumeric(name, values); err != nil {
				return nil, errors.Wrap(err, "StandardScaler.Transform")
			}
		case dataset.Categorical:
			values, err := d.Categorical(name)
			if err != nil {
				return nil, errors.Wrap(err, "StandardScaler.Transform")
			}
			if err := out.AddCategorical(name, values); err != nil {
				return nil, errors.Wrap(err, "StandardScaler.Transform")
			}
		case dataset.Time:
			values, err := d.Times(name)
			if err != nil {
				return nil, errors.Wrap(err, "StandardScaler.Transform")
			}
			if err := out.AddTime(name, values); err != nil {
				return nil, errors.Wrap(err, "StandardScaler.Transform")
			}
		}
	}
	return out, nil
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *StandardScaler) FitTransform(d *dataset.Dataset, columns ...string) (*dataset.Dataset, error) {
	if err := s.Fit(d, columns...); err != nil {
		return nil, err
	}
	return s.Transform(d)
}

// InverseScale は標準化された1つの値を元のスケールに戻す。
// 予測値を元の単位で報告したい場合に使う。
func (s *StandardScaler) InverseScale(column string, value float64) (float64, error) {
	if !s.IsFitted() {
		return 0, errors.NewNotFittedError("StandardScaler", "InverseScale")
	}
	sc, ok := s.Scale[column]
	if !ok {
		return 0, errors.NewValidationError("column", "not fitted by this scaler", column)
	}
	return value*sc + s.Mean[column], nil
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t)", s.WithMean, s.WithStd)
	}
	return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t, n_columns=%d)",
		s.WithMean, s.WithStd, len(s.Columns))
}
