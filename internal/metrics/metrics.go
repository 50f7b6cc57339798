package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	CCUName          = "infra_ccu_setup"
	CCUHelp          = "The environment setup based on ccu template"
	EnvironmentLabel = "environment"
)

// CCU is the gauge reporting the CCU template an environment was set up for.
type CCU struct {
	gauge prometheus.Gauge
}

// NewRegistry returns a registry carrying the Go runtime and process
// collectors. Nothing is registered with the global default registry.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New registers the infra_ccu_setup gauge labelled with env. Registering it
// twice on the same registry fails with prometheus.AlreadyRegisteredError.
func New(reg prometheus.Registerer, env string) (*CCU, error) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        CCUName,
		Help:        CCUHelp,
		ConstLabels: prometheus.Labels{EnvironmentLabel: env},
	})
	if err := reg.Register(g); err != nil {
		return nil, err
	}
	return &CCU{gauge: g}, nil
}

func MustNew(reg prometheus.Registerer, env string) *CCU {
	c, err := New(reg, env)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *CCU) Set(v int64) { c.gauge.Set(float64(v)) }

// Gauge exposes the underlying collector, mostly for tests.
func (c *CCU) Gauge() prometheus.Gauge { return c.gauge }
