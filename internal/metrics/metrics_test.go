package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Evaluation(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	assert.NoError(t, err)

	m.Evaluation("forest", 0.75, 4)
	m.Evaluation("forest", 0.5, 8)
	m.Evaluation("knn", 1, 2)

	assert.Equal(t, 0.5, testutil.ToFloat64(m.Accuracy().WithLabelValues("forest")))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.Samples().WithLabelValues("forest")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Accuracy().WithLabelValues("knn")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Accuracy()))
}

func TestMetrics_Class(t *testing.T) {

	type test struct {
		precision       Ratio
		recall          Ratio
		precisionSeries int
		recallSeries    int
	}

	tests := map[string]test{
		"defined": {
			precision:       Ratio{Value: 0.5, Defined: true},
			recall:          Ratio{Value: 1, Defined: true},
			precisionSeries: 1,
			recallSeries:    1,
		},
		"undefined-recall": {
			precision:       Ratio{Value: 0, Defined: true},
			recall:          Ratio{},
			precisionSeries: 1,
		},
		"undefined": {},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := New(prometheus.NewRegistry())
			assert.NoError(t, err)

			m.Class("forest", "1", tt.precision, tt.recall)

			assert.Equal(t, tt.precisionSeries, testutil.CollectAndCount(m.Precision()))
			assert.Equal(t, tt.recallSeries, testutil.CollectAndCount(m.Recall()))
			if tt.precisionSeries > 0 {
				assert.Equal(t, tt.precision.Value, testutil.ToFloat64(m.Precision().WithLabelValues("forest", "1")))
			}
			if tt.recallSeries > 0 {
				assert.Equal(t, tt.recall.Value, testutil.ToFloat64(m.Recall().WithLabelValues("forest", "1")))
			}
		})
	}
}

func TestMetrics_ClassUndefinedRemovesSeries(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	assert.NoError(t, err)

	m.Class("forest", "1", Ratio{Value: 0.5, Defined: true}, Ratio{Value: 1, Defined: true})
	assert.Equal(t, 1, testutil.CollectAndCount(m.Recall()))

	m.Class("forest", "1", Ratio{Value: 0.5, Defined: true}, Ratio{})
	assert.Equal(t, 0, testutil.CollectAndCount(m.Recall()))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Precision()))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := New(registry)
	assert.NoError(t, err)
	_, err = New(registry)
	assert.Error(t, err)
}
