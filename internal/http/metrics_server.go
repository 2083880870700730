package http

import (
	"net/http"
	"time"

	"login_checker/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func NewMetricsServer(host string, timeout time.Duration, log *log.Logger) *Server {
	reg := metrics.MetricsRegister()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &Server{
		name:         `metrics`,
		server:       &http.Server{Addr: host, Handler: mux},
		shutdownWait: timeout,
		log:          log,
	}
}
