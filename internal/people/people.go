package people

import (
	"log/slog"

	"peoplereg/internal/people/metrics"
	"peoplereg/internal/people/models"
	"peoplereg/internal/people/system"
)

// System is the in-memory people registry.
type System = system.System

type (
	Person  = models.Person
	Address = models.Address
)

// NewSystem constructs a registry that logs to logger and records into m.
// Either may be nil to disable that concern. Build m once with metrics.New and
// pass it to every system; systems sharing m add to the same series.
func NewSystem(logger *slog.Logger, m *metrics.Metrics) *System {
	var opts []system.Option
	if logger != nil {
		opts = append(opts, system.WithLogger(logger))
	}
	if m != nil {
		opts = append(opts, system.WithMetrics(m))
	}
	return system.New(opts...)
}
