package commands

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	promEnable = false
	promListen = ":9000"
)

func prometheus() {
	if !promEnable {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	router := httprouter.New()
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(promListen, router); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
