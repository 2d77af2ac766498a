package eval

// ClassReport holds the one-vs-rest metrics of a single class.
// Ratios with a zero denominator are left at 0 and flagged as undefined.
type ClassReport struct {
	Label     int     `json:"label"`
	Support   int     `json:"support"`
	Predicted int     `json:"predicted"`
	Outcome   Outcome `json:"outcome"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	// Defined reports which of precision, recall and f1 could be computed.
	Defined struct {
		Precision bool `json:"precision"`
		Recall    bool `json:"recall"`
		F1        bool `json:"f1"`
	} `json:"defined"`
}

// Report summarises a confusion matrix.
type Report struct {
	Samples  int           `json:"samples"`
	Correct  int           `json:"correct"`
	Accuracy float64       `json:"accuracy"`
	Classes  []ClassReport `json:"classes"`
}

// NewReport evaluates the given confusion matrix.
func NewReport(cm ConfusionMatrix) (Report, error) {
	accuracy, err := Accuracy(cm)
	if err != nil {
		return Report{}, err
	}
	classes := make([]ClassReport, 0, cm.Size())
	for _, label := range cm.classes.labels {
		// the label comes from the matrix itself
		outcome, _ := cm.Outcome(label)
		cr := ClassReport{
			Label:     label,
			Support:   outcome.TP + outcome.FN,
			Predicted: outcome.TP + outcome.FP,
			Outcome:   outcome,
		}
		if p, err := outcome.Precision(); err == nil {
			cr.Precision = p
			cr.Defined.Precision = true
		}
		if r, err := outcome.Recall(); err == nil {
			cr.Recall = r
			cr.Defined.Recall = true
		}
		if f, err := outcome.F1(); err == nil {
			cr.F1 = f
			cr.Defined.F1 = true
		}
		classes = append(classes, cr)
	}
	return Report{
		Samples:  cm.Total(),
		Correct:  cm.Correct(),
		Accuracy: accuracy,
		Classes:  classes,
	}, nil
}

// Class returns the report for the given label.
func (r Report) Class(label int) (ClassReport, bool) {
	for _, c := range r.Classes {
		if c.Label == label {
			return c, true
		}
	}
	return ClassReport{}, false
}
