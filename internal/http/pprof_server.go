package http

import (
	"net/http"
	"net/http/pprof"
	"time"

	log "github.com/sirupsen/logrus"
)

func NewPprofServer(host string, timeout time.Duration, log *log.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return &Server{
		name:         `pprof`,
		server:       &http.Server{Addr: host, Handler: mux},
		shutdownWait: timeout,
		log:          log,
	}
}
