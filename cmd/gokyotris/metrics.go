package main

import (
	"fmt"
	"net/http"

	"github.com/arl/statsviz"
	"github.com/charmbracelet/log"
)

// serveMetrics exposes runtime charts at addr/debug/statsviz/ until the
// process exits. An empty addr disables it.
func serveMetrics(addr string, logger *log.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		logger.Error("register statsviz", "err", err)
		return
	}
	go func() {
		logger.Info(fmt.Sprintf("metrics at http://%s/debug/statsviz/", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
}
