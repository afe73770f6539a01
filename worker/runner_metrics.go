package worker

import "github.com/prometheus/client_golang/prometheus"

var (
	ticks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "voicesnake",
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Game ticks processed.",
		},
	)
	gameOvers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "voicesnake",
			Subsystem: "game",
			Name:      "game_over_total",
			Help:      "Games ended by a death, by cause.",
		},
		[]string{"cause"},
	)
)

func init() {
	prometheus.MustRegister(ticks, gameOvers)
}
