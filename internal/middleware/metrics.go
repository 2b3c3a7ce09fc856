package middleware

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

// Metrics keeps the in-process counters exposed on /metricsz.
type Metrics struct {
	requestsTotal atomic.Int64
	errorsTotal   atomic.Int64
	start         time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{start: time.Now()}
}

// Collect counts every request and every unhandled failure. Only status 500
// counts as an error: a degraded /readyz answering 503 is reporting state,
// not failing.
func (m *Metrics) Collect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requestsTotal.Add(1)
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		if rw.status == http.StatusInternalServerError {
			m.errorsTotal.Add(1)
		}
	})
}

// Handler serves the plain-text counter snapshot.
func (m *Metrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "requests_total %d\n", m.requestsTotal.Load())
		fmt.Fprintf(w, "errors_total %d\n", m.errorsTotal.Load())
		fmt.Fprintf(w, "uptime_seconds %d\n", int(time.Since(m.start).Seconds()))
	}
}
