package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "eval"

// Prometheus holds the collectors of the evaluation metrics.
type Prometheus struct {
	Accuracy  *prometheus.GaugeVec
	Samples   *prometheus.GaugeVec
	Precision *prometheus.GaugeVec
	Recall    *prometheus.GaugeVec
}

// NewPrometheusMetrics creates the evaluation collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Accuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "accuracy",
				Help:      "fraction of correctly predicted samples",
			}, []string{"model"}),
		Samples: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "samples",
				Help:      "number of evaluated samples",
			}, []string{"model"}),
		Precision: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "precision",
				Help:      "per class precision",
			}, []string{"model", "class"}),
		Recall: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "recall",
				Help:      "per class recall",
			}, []string{"model", "class"}),
	}
}

// Collectors returns all collectors for registration.
func (p Prometheus) Collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Accuracy, p.Samples, p.Precision, p.Recall}
}
