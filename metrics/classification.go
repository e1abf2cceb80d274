package metrics

import (
	"math"
)

// Accuracy は正解率を計算する。
// 予測値は0.5を閾値として0/1に丸めてから正解ラベルと比較する。
func Accuracy(yTrue, yPred []float64) (float64, error) {
	if err := validate("Accuracy", yTrue, yPred); err != nil {
		return 0, err
	}

	correct := 0
	for i := range yTrue {
		pred := 0.0
		if yPred[i] > 0.5 {
			pred = 1.0
		}
		if pred == yTrue[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}

// LogLoss は二値分類の対数損失を計算する。
// 予測確率は log(0) を避けるため [eps, 1-eps] にクリップされる。
func LogLoss(yTrue, yPred []float64) (float64, error) {
	if err := validate("LogLoss", yTrue, yPred); err != nil {
		return 0, err
	}

	const eps = 1e-15
	var loss float64
	for i := range yTrue {
		p := yPred[i]
		if p < eps {
			p = eps
		} else if p > 1-eps {
			p = 1 - eps
		}

		if yTrue[i] == 1 {
			loss -= math.Log(p)
		} else {
			loss -= math.Log(1 - p)
		}
	}
	return loss / float64(len(yTrue)), nil
}
