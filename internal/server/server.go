package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/praxpk/prompt-visualizer/internal/catalog"
	"github.com/praxpk/prompt-visualizer/internal/config"
	"github.com/rs/zerolog/log"
)

type Server struct {
	cfg  *config.Config
	http *http.Server
	cat  *catalog.Catalog // held for graceful close
}

// New loads the dataset and wires the full router. A missing dataset is a
// fatal startup condition: no listener is created.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	s := &Server{cfg: cfg}

	router, cat, err := s.setupRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("setup routes: %w", err)
	}
	s.cat = cat

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.http.Addr).Msg("listening")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("graceful shutdown initiated")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := s.http.Shutdown(shutdownCtx)

		if s.cat != nil {
			if closeErr := s.cat.Close(); closeErr != nil {
				log.Warn().Err(closeErr).Msg("error closing dataset catalog")
			} else {
				log.Info().Msg("dataset catalog closed")
			}
		}

		return err
	case err := <-errCh:
		return err
	}
}
