package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/config"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
)

// RollMetrics counts dice rolls. It implements dice.Recorder.
type RollMetrics struct {
	rolls          *prometheus.CounterVec
	criticalHits   prometheus.Counter
	criticalMisses prometheus.Counter
}

var _ dice.Recorder = (*RollMetrics)(nil)

// NewRollMetrics creates the roll counters under cfg.Namespace and registers them with reg.
//
// Precondition: reg must be non-nil.
// Postcondition: Returns registered metrics or the registration error.
func NewRollMetrics(cfg config.MetricsConfig, reg prometheus.Registerer) (*RollMetrics, error) {
	m := &RollMetrics{
		rolls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "dice_rolls_total",
				Help:      "Total number of dice rolls by die size and advantage state.",
			},
			[]string{"sides", "advantage"},
		),
		criticalHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "dice_natural_twenties_total",
			Help:      "Total number of single d20 rolls that came up 20.",
		}),
		criticalMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "dice_natural_ones_total",
			Help:      "Total number of single d20 rolls that came up 1.",
		}),
	}
	for _, c := range []prometheus.Collector{m.rolls, m.criticalHits, m.criticalMisses} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveRoll counts r. Natural 20s and 1s count only for single d20 rolls.
func (m *RollMetrics) ObserveRoll(r dice.RollResult, sides int) {
	m.rolls.WithLabelValues(strconv.Itoa(sides), r.Advantage.String()).Inc()
	if sides != 20 || (len(r.Rolls) != 1 && r.Advantage == dice.Normal) {
		return
	}
	switch {
	case dice.IsCriticalHit(r.Natural()):
		m.criticalHits.Inc()
	case dice.IsCriticalMiss(r.Natural()):
		m.criticalMisses.Inc()
	}
}
