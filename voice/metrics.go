package voice

import "github.com/prometheus/client_golang/prometheus"

var (
	steers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "voicesnake",
			Subsystem: "voice",
			Name:      "steers_total",
			Help:      "Direction keywords heard, by direction and outcome.",
		},
		[]string{"direction", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(steers)
}
