package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Observer publishes evaluation results to the default prometheus registry.
var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Collectors()...)
}

// Ratio is a metric value that might not be computable.
type Ratio struct {
	Value   float64
	Defined bool
}

// Metrics tracks the latest evaluation of each model.
type Metrics struct {
	prometheus Prometheus
}

// New creates metrics registered with the given registerer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		prometheus: NewPrometheusMetrics(),
	}
	for _, c := range m.prometheus.Collectors() {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Evaluation records the overall result of an evaluation.
func (m *Metrics) Evaluation(model string, accuracy float64, samples int) {
	m.prometheus.Accuracy.WithLabelValues(model).Set(accuracy)
	m.prometheus.Samples.WithLabelValues(model).Set(float64(samples))
	log.Debug().Str("model", model).Float64("accuracy", accuracy).Int("samples", samples).Msg("recorded evaluation")
}

// Class records the per class result of an evaluation.
// An undefined ratio removes the series of the class instead of reporting it as zero.
func (m *Metrics) Class(model, class string, precision, recall Ratio) {
	set(m.prometheus.Precision, precision, model, class)
	set(m.prometheus.Recall, recall, model, class)
}

func set(gauge *prometheus.GaugeVec, r Ratio, labels ...string) {
	if !r.Defined {
		gauge.DeleteLabelValues(labels...)
		return
	}
	gauge.WithLabelValues(labels...).Set(r.Value)
}

// Accuracy returns the collector holding the accuracy per model.
func (m *Metrics) Accuracy() *prometheus.GaugeVec {
	return m.prometheus.Accuracy
}

// Samples returns the collector holding the sample count per model.
func (m *Metrics) Samples() *prometheus.GaugeVec {
	return m.prometheus.Samples
}

// Precision returns the collector holding the precision per model and class.
func (m *Metrics) Precision() *prometheus.GaugeVec {
	return m.prometheus.Precision
}

// Recall returns the collector holding the recall per model and class.
func (m *Metrics) Recall() *prometheus.GaugeVec {
	return m.prometheus.Recall
}
