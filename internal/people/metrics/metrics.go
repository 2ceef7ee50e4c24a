package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reasons used as the "reason" label.
const (
	ReasonNilPerson     = "nil_person"
	ReasonDuplicateName = "duplicate_name"
)

// Metrics provides observability for the people registry.
type Metrics struct {
	PeopleAdded    prometheus.Counter
	PeopleRejected *prometheus.CounterVec
	PeopleStored   prometheus.Gauge
}

// New registers the registry metrics on reg. Build it once at wiring time and
// share it between systems; registering twice on one registerer panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PeopleAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "peoplereg_people_added_total",
			Help: "Total number of people accepted by the registry",
		}),
		PeopleRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "peoplereg_people_rejected_total",
			Help: "Total number of people rejected by the registry, by reason",
		}, []string{"reason"}),
		PeopleStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "peoplereg_people_stored",
			Help: "Number of people held across all registries",
		}),
	}
}

// IncrementPersonAdded records an accepted person. The stored gauge moves by
// delta so systems sharing one Metrics add up instead of overwriting each other.
func (m *Metrics) IncrementPersonAdded() {
	m.PeopleAdded.Inc()
	m.PeopleStored.Inc()
}

// IncrementPersonRejected records a rejected insertion.
func (m *Metrics) IncrementPersonRejected(reason string) {
	m.PeopleRejected.WithLabelValues(reason).Inc()
}
