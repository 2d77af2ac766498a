package eval

import (
	"strconv"

	"github.com/sjwhitworth/golearn/evaluation"
)

// Golearn converts the matrix to the golearn representation,
// which is keyed by the true class first and the predicted class second.
func (cm ConfusionMatrix) Golearn() evaluation.ConfusionMatrix {
	c := make(evaluation.ConfusionMatrix, cm.Size())
	for t, actual := range cm.classes.labels {
		row := make(map[string]int, cm.Size())
		for p, predicted := range cm.classes.labels {
			row[strconv.Itoa(predicted)] = cm.counts[p][t]
		}
		c[strconv.Itoa(actual)] = row
	}
	return c
}

// Summary prints the per class precision, recall and f1 scores of the matrix
// together with its overall accuracy.
func Summary(cm ConfusionMatrix) string {
	return evaluation.GetSummary(cm.Golearn())
}
