package eval

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense returns the counts of the matrix as a gonum matrix.
func (cm ConfusionMatrix) Dense() *mat.Dense {
	k := cm.Size()
	if k == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, 0, k*k)
	for _, row := range cm.counts {
		for _, c := range row {
			data = append(data, float64(c))
		}
	}
	return mat.NewDense(k, k, data)
}

// Proportions returns the matrix scaled by the number of samples,
// so that its trace equals the accuracy.
func (cm ConfusionMatrix) Proportions() (*mat.Dense, error) {
	if cm.Total() == 0 {
		return nil, fmt.Errorf("%w: confusion matrix holds no samples", DivisionUndefinedErr)
	}
	d := cm.Dense()
	d.Scale(1/float64(cm.Total()), d)
	return d, nil
}
