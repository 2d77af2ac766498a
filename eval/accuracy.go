package eval

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Accuracy returns the fraction of correctly predicted samples of the matrix.
func Accuracy(cm ConfusionMatrix) (float64, error) {
	total := cm.Total()
	if total == 0 {
		log.Debug().Ints("classes", cm.classes.labels).Msg("accuracy on empty confusion matrix")
		return 0, fmt.Errorf("%w: confusion matrix holds no samples", DivisionUndefinedErr)
	}
	return float64(cm.Correct()) / float64(total), nil
}

// AccuracyFromLabels returns the accuracy of the predicted against the true labels.
func AccuracyFromLabels(predicted, actual []int) (float64, error) {
	cm, err := Build(predicted, actual)
	if err != nil {
		return 0, err
	}
	return Accuracy(cm)
}
