package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newRouter(ctx appContext, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()

	r.Use(requestLogger(ctx.logger)...)
	r.Use(addCorsHeaders)

	r.Handle("/", appHandler{ctx, handleIndex}).Methods("GET", "OPTIONS")
	r.Handle("/newlicense", appHandler{ctx, handleNewLicense}).Methods("GET", "OPTIONS")
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), w)
	})

	return r
}
