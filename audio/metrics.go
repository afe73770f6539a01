package audio

import "github.com/prometheus/client_golang/prometheus"

var (
	blocksCaptured = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "voicesnake",
			Subsystem: "audio",
			Name:      "blocks_total",
			Help:      "Audio blocks pushed onto the decoder queue.",
		},
	)
	queueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "voicesnake",
			Subsystem: "audio",
			Name:      "queue_depth",
			Help:      "Audio blocks waiting for the decoder.",
		},
	)
)

func init() {
	prometheus.MustRegister(blocksCaptured, queueDepth)
}
