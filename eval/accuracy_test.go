package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {

	type test struct {
		classes  []int
		counts   [][]int
		accuracy float64
	}

	tests := map[string]test{
		"all-correct": {
			classes: []int{0, 1, 2},
			counts: [][]int{
				{3, 0, 0},
				{0, 5, 0},
				{0, 0, 1},
			},
			accuracy: 1,
		},
		"all-incorrect": {
			classes: []int{0, 1},
			counts: [][]int{
				{0, 4},
				{2, 0},
			},
			accuracy: 0,
		},
		"three-of-four": {
			classes: []int{1, 2},
			counts: [][]int{
				{1, 1},
				{0, 2},
			},
			accuracy: 0.75,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cm, err := NewConfusionMatrix(tt.classes, tt.counts)
			assert.NoError(t, err)
			accuracy, err := Accuracy(cm)
			assert.NoError(t, err)
			assert.Equal(t, tt.accuracy, accuracy)

			accuracy, err = cm.Accuracy()
			assert.NoError(t, err)
			assert.Equal(t, tt.accuracy, accuracy)
		})
	}
}

func TestAccuracy_DivisionUndefined(t *testing.T) {
	cm, err := NewConfusionMatrix([]int{0, 1}, [][]int{
		{0, 0},
		{0, 0},
	})
	assert.NoError(t, err)

	_, err = Accuracy(cm)
	assert.ErrorIs(t, err, DivisionUndefinedErr)

	_, err = Accuracy(ConfusionMatrix{})
	assert.ErrorIs(t, err, DivisionUndefinedErr)
}

func TestAccuracyFromLabels(t *testing.T) {

	type test struct {
		predicted []int
		actual    []int
		accuracy  float64
		err       error
	}

	tests := map[string]test{
		"multi-class": {
			predicted: []int{1, 1, 2, 2},
			actual:    []int{1, 2, 2, 2},
			accuracy:  0.75,
		},
		"binary": {
			predicted: []int{1, 0, 1, 0},
			actual:    []int{1, 0, 0, 0},
			accuracy:  0.75,
		},
		"perfect": {
			predicted: []int{4, 9, 4},
			actual:    []int{4, 9, 4},
			accuracy:  1,
		},
		"empty": {
			err: InvalidInputErr,
		},
		"mismatch": {
			predicted: []int{1},
			actual:    []int{1, 1},
			err:       InvalidInputErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			accuracy, err := AccuracyFromLabels(tt.predicted, tt.actual)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.accuracy, accuracy)
		})
	}
}
