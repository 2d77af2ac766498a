// Package eval computes classification evaluation statistics
// e.g. confusion matrices and accuracy, from predicted and true labels.
package eval

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// ConfusionMatrix cross-tabulates predicted against true labels.
// Rows index the predicted class and columns the true class,
// both following the ascending order of Classes.
// Note that this is the transpose of a grid keyed by true class first,
// as golearn does, see Golearn and Dense().T().
type ConfusionMatrix struct {
	classes classIndex
	counts  [][]int
	total   int
}

// Build creates the confusion matrix for the given label sequences.
// The classes are the union of the labels found in both sequences.
func Build(predicted, actual []int) (ConfusionMatrix, error) {
	if err := validate(predicted, actual); err != nil {
		return ConfusionMatrix{}, err
	}
	return count(newClassIndex(union(predicted, actual)), predicted, actual)
}

// BuildWithClasses creates the confusion matrix over a fixed label alphabet.
// Any label outside of the given classes is rejected.
func BuildWithClasses(predicted, actual, classes []int) (ConfusionMatrix, error) {
	if err := validate(predicted, actual); err != nil {
		return ConfusionMatrix{}, err
	}
	if len(classes) == 0 {
		return ConfusionMatrix{}, fmt.Errorf("%w: no classes given", InvalidInputErr)
	}
	if err := distinct(classes); err != nil {
		return ConfusionMatrix{}, err
	}
	return count(newClassIndex(classes), predicted, actual)
}

// NewConfusionMatrix wraps a precomputed grid of counts.
// counts[p][t] is the number of samples predicted as classes[p] with true class classes[t].
func NewConfusionMatrix(classes []int, counts [][]int) (ConfusionMatrix, error) {
	k := len(classes)
	if k == 0 {
		return ConfusionMatrix{}, fmt.Errorf("%w: no classes given", InvalidInputErr)
	}
	if err := distinct(classes); err != nil {
		return ConfusionMatrix{}, err
	}
	if len(counts) != k {
		return ConfusionMatrix{}, fmt.Errorf("%w: %d rows for %d classes", InvalidInputErr, len(counts), k)
	}
	// rows are reordered to follow the sorted labels
	ci := newClassIndex(classes)
	grid := newGrid(k)
	total := 0
	for p, row := range counts {
		if len(row) != k {
			return ConfusionMatrix{}, fmt.Errorf("%w: row %d has %d columns for %d classes", InvalidInputErr, p, len(row), k)
		}
		pi, _ := ci.of(classes[p])
		for t, c := range row {
			if c < 0 {
				return ConfusionMatrix{}, fmt.Errorf("%w: negative count %d at [%d][%d]", InvalidInputErr, c, p, t)
			}
			ti, _ := ci.of(classes[t])
			grid[pi][ti] = c
			total += c
		}
	}
	return ConfusionMatrix{
		classes: ci,
		counts:  grid,
		total:   total,
	}, nil
}

func validate(predicted, actual []int) error {
	if len(predicted) == 0 || len(actual) == 0 {
		log.Debug().
			Int("predicted", len(predicted)).
			Int("actual", len(actual)).
			Msg("empty label sequence")
		return fmt.Errorf("%w: empty label sequence", InvalidInputErr)
	}
	if len(predicted) != len(actual) {
		log.Debug().
			Int("predicted", len(predicted)).
			Int("actual", len(actual)).
			Msg("label sequences of different length")
		return fmt.Errorf("%w: label sequences differ in length [ %d | %d ]", InvalidInputErr, len(predicted), len(actual))
	}
	return nil
}

func count(ci classIndex, predicted, actual []int) (ConfusionMatrix, error) {
	grid := newGrid(ci.size())
	for i := range predicted {
		p, ok := ci.of(predicted[i])
		if !ok {
			log.Debug().Int("sample", i).Int("label", predicted[i]).Ints("classes", ci.labels).Msg("unknown predicted label")
			return ConfusionMatrix{}, fmt.Errorf("%w: predicted label %d at %d is not a known class", InvalidInputErr, predicted[i], i)
		}
		t, ok := ci.of(actual[i])
		if !ok {
			log.Debug().Int("sample", i).Int("label", actual[i]).Ints("classes", ci.labels).Msg("unknown true label")
			return ConfusionMatrix{}, fmt.Errorf("%w: true label %d at %d is not a known class", InvalidInputErr, actual[i], i)
		}
		grid[p][t]++
	}
	return ConfusionMatrix{
		classes: ci,
		counts:  grid,
		total:   len(predicted),
	}, nil
}

func newGrid(k int) [][]int {
	grid := make([][]int, k)
	for i := range grid {
		grid[i] = make([]int, k)
	}
	return grid
}

// Classes returns the class labels in row/column order.
func (cm ConfusionMatrix) Classes() []int {
	labels := make([]int, len(cm.classes.labels))
	copy(labels, cm.classes.labels)
	return labels
}

// Size returns the number of classes.
func (cm ConfusionMatrix) Size() int {
	return cm.classes.size()
}

// At returns the count at the given row and column index.
func (cm ConfusionMatrix) At(p, t int) int {
	return cm.counts[p][t]
}

// Count returns the number of samples predicted as the first label with the second as true label.
// Labels outside of the matrix classes count zero.
func (cm ConfusionMatrix) Count(predicted, actual int) int {
	p, ok := cm.classes.of(predicted)
	if !ok {
		return 0
	}
	t, ok := cm.classes.of(actual)
	if !ok {
		return 0
	}
	return cm.counts[p][t]
}

// Rows returns a copy of the matrix grid.
func (cm ConfusionMatrix) Rows() [][]int {
	rows := newGrid(cm.Size())
	for i, row := range cm.counts {
		copy(rows[i], row)
	}
	return rows
}

// Total returns the number of samples.
func (cm ConfusionMatrix) Total() int {
	return cm.total
}

// Correct returns the sum of the diagonal e.g. the correctly predicted samples.
func (cm ConfusionMatrix) Correct() int {
	var correct int
	for i := range cm.counts {
		correct += cm.counts[i][i]
	}
	return correct
}

// Accuracy is a shorthand for Accuracy(cm).
func (cm ConfusionMatrix) Accuracy() (float64, error) {
	return Accuracy(cm)
}
