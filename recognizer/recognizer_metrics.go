package recognizer

import "github.com/prometheus/client_golang/prometheus"

// Instrument wraps all recognizer methods to time the underlying calls.
func Instrument(r Recognizer) Recognizer { return &metrics{r} }

var (
	recognizerCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "voicesnake",
			Subsystem: "recognizer",
			Name:      "calls",
			Help:      "Calls processed by the recognizer.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(recognizerCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(recognizerCalls)
}

type metrics struct{ r Recognizer }

func (m *metrics) Accept(block []byte) (Transcript, error) {
	defer instrument("Accept")()
	return m.r.Accept(block)
}

func (m *metrics) Reset() {
	defer instrument("Reset")()
	m.r.Reset()
}
