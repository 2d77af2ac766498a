package eval

import (
	"fmt"
	"strconv"

	"github.com/drakos74/free-eval/infra/config"
	"github.com/drakos74/free-eval/internal/metrics"
	"github.com/rs/zerolog/log"
)

const configKey = "eval"

// Config defines how label sequences are evaluated.
type Config struct {
	// Name identifies the evaluated model in logs and metrics.
	Name string `json:"name"`
	// Classes fixes the label alphabet, if empty the labels found are used.
	Classes []int `json:"classes"`
	// Positive is the label treated as positive class for the binary outcome.
	Positive int `json:"positive"`
	// Metrics publishes each report to the prometheus registry.
	Metrics bool `json:"metrics"`
}

// LoadConfig loads the evaluator config from the given directory.
func LoadConfig(dir string) (Config, error) {
	var cfg Config
	if _, err := config.Load(dir, configKey, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Evaluator evaluates predictions according to its config.
type Evaluator struct {
	cfg      Config
	observer *metrics.Metrics
}

// NewEvaluator creates a new evaluator for the given config.
func NewEvaluator(cfg Config) (*Evaluator, error) {
	if len(cfg.Classes) > 0 {
		if err := distinct(cfg.Classes); err != nil {
			return nil, err
		}
		if _, ok := newClassIndex(cfg.Classes).of(cfg.Positive); !ok {
			return nil, fmt.Errorf("%w: positive label %d is not one of %v", InvalidInputErr, cfg.Positive, cfg.Classes)
		}
	}
	e := &Evaluator{cfg: cfg}
	if cfg.Metrics {
		e.observer = metrics.Observer
	}
	return e, nil
}

// WithObserver publishes the reports of the evaluator to the given metrics,
// regardless of the Metrics config flag.
func (e *Evaluator) WithObserver(observer *metrics.Metrics) *Evaluator {
	e.observer = observer
	return e
}

// Config returns the evaluator config.
func (e *Evaluator) Config() Config {
	return e.cfg
}

// Matrix builds the confusion matrix for the given labels.
func (e *Evaluator) Matrix(predicted, actual []int) (ConfusionMatrix, error) {
	if len(e.cfg.Classes) > 0 {
		return BuildWithClasses(predicted, actual, e.cfg.Classes)
	}
	return Build(predicted, actual)
}

// Evaluate builds the report for the given labels.
func (e *Evaluator) Evaluate(predicted, actual []int) (Report, error) {
	cm, err := e.Matrix(predicted, actual)
	if err != nil {
		log.Debug().Err(err).Str("model", e.cfg.Name).Msg("could not build confusion matrix")
		return Report{}, fmt.Errorf("could not evaluate %s: %w", e.cfg.Name, err)
	}
	report, err := NewReport(cm)
	if err != nil {
		log.Debug().Err(err).Str("model", e.cfg.Name).Msg("could not create report")
		return Report{}, fmt.Errorf("could not evaluate %s: %w", e.cfg.Name, err)
	}
	if e.observer != nil {
		e.observer.Evaluation(e.cfg.Name, report.Accuracy, report.Samples)
		for _, c := range report.Classes {
			e.observer.Class(e.cfg.Name, strconv.Itoa(c.Label),
				metrics.Ratio{Value: c.Precision, Defined: c.Defined.Precision},
				metrics.Ratio{Value: c.Recall, Defined: c.Defined.Recall})
		}
	}
	return report, nil
}

// Outcome returns the counts for the configured positive label.
func (e *Evaluator) Outcome(predicted, actual []int) (Outcome, error) {
	cm, err := e.Matrix(predicted, actual)
	if err != nil {
		return Outcome{}, err
	}
	return cm.Outcome(e.cfg.Positive)
}
