package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/praxpk/prompt-visualizer/internal/catalog"
	"github.com/praxpk/prompt-visualizer/internal/models"
	"github.com/rs/zerolog/log"
)

// Pinger is implemented by the dataset catalog.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and the root banner.
type HealthHandler struct {
	cat      Pinger
	schema   Schema
	rowCount int64
}

func NewHealthHandler(cat Pinger, schema Schema, rowCount int64) *HealthHandler {
	return &HealthHandler{cat: cat, schema: schema, rowCount: rowCount}
}

// Healthz handles GET /healthz and GET /health
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	models.WriteJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz with a short engine round trip.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.cat.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("readiness check failed")
		models.WriteJSON(w, http.StatusServiceUnavailable, models.ReadyResponse{
			Status: "error",
			DB:     false,
			Reason: err.Error(),
		})
		return
	}
	models.WriteJSON(w, http.StatusOK, models.ReadyResponse{Status: "ok", DB: true})
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	cols := h.schema.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	models.WriteJSON(w, http.StatusOK, models.RootResponse{
		Status:       "ok",
		Message:      "Prompt-Visualizer backend",
		DatasetReady: true,
		View:         h.schema.ViewName(),
		Columns:      names,
		RowCount:     h.rowCount,
	})
}

// ensure the concrete catalog satisfies the handler interfaces
var (
	_ Pinger = (*catalog.Catalog)(nil)
	_ Schema = (*catalog.Catalog)(nil)
)
