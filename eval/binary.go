package eval

import "fmt"

// Positive is the positive label of a binary classifier.
const Positive = 1

// BuildBinary creates the 2x2 confusion matrix of a binary classifier.
// Labels must be 0 or 1.
func BuildBinary(predicted, actual []int) (ConfusionMatrix, error) {
	return BuildWithClasses(predicted, actual, BinaryClasses)
}

// Outcome holds the one-vs-rest counts for a single class.
type Outcome struct {
	TP int `json:"tp"`
	TN int `json:"tn"`
	FP int `json:"fp"`
	FN int `json:"fn"`
}

// Outcome returns the counts of the matrix treating the given label as the positive class.
func (cm ConfusionMatrix) Outcome(label int) (Outcome, error) {
	i, ok := cm.classes.of(label)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: label %d is not a class of %v", InvalidInputErr, label, cm.classes.labels)
	}
	tp := cm.counts[i][i]
	var predicted, actual int
	for j := 0; j < cm.Size(); j++ {
		predicted += cm.counts[i][j]
		actual += cm.counts[j][i]
	}
	fp := predicted - tp
	fn := actual - tp
	return Outcome{
		TP: tp,
		FP: fp,
		FN: fn,
		TN: cm.total - tp - fp - fn,
	}, nil
}

// Total returns the number of samples.
func (o Outcome) Total() int {
	return o.TP + o.TN + o.FP + o.FN
}

// Accuracy returns the fraction of samples classified correctly with respect to the positive class.
func (o Outcome) Accuracy() (float64, error) {
	return ratio(o.TP+o.TN, o.Total(), "accuracy")
}

// Precision is the fraction of positive predictions that are correct.
func (o Outcome) Precision() (float64, error) {
	return ratio(o.TP, o.TP+o.FP, "precision")
}

// Recall is the fraction of positive samples that were predicted as such.
func (o Outcome) Recall() (float64, error) {
	return ratio(o.TP, o.TP+o.FN, "recall")
}

// F1 is the harmonic mean of precision and recall.
func (o Outcome) F1() (float64, error) {
	p, err := o.Precision()
	if err != nil {
		return 0, err
	}
	r, err := o.Recall()
	if err != nil {
		return 0, err
	}
	if p+r == 0 {
		return 0, fmt.Errorf("%w: f1 with zero precision and recall", DivisionUndefinedErr)
	}
	return 2 * p * r / (p + r), nil
}

func ratio(n, d int, name string) (float64, error) {
	if d == 0 {
		return 0, fmt.Errorf("%w: %s over zero samples", DivisionUndefinedErr, name)
	}
	return float64(n) / float64(d), nil
}
