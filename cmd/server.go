package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/curesma/registry-bridge/curesma"
	"github.com/curesma/registry-bridge/redcap"
	"github.com/curesma/registry-bridge/transfer"
)

// Start wires the transfer service to its collaborators and serves the
// trigger interface until the process is stopped.
func Start(config Config) error {
	zerolog.SetGlobalLevel(config.LogLevel)
	if err := config.Validate(); err != nil {
		return err
	}

	host := redcap.NewClient(config.REDCap)
	service := transfer.New(host, submitterFactory(config.CureSMA), transfer.Params{
		Assigner: config.CureSMA.SubmittingOrg,
	})
	server := &Server{service: service}

	err := http.ListenAndServe(config.Public.Address, server.Routes())
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// submitterFactory materializes the certificate files and transport client
// for one run. Certificate cleanup is handed back to the caller.
func submitterFactory(cfg curesma.Config) transfer.SubmitterFactory {
	return func(_ context.Context) (transfer.Submitter, func() error, error) {
		certs, err := curesma.MaterializeCerts(cfg)
		if err != nil {
			return nil, nil, err
		}
		client, err := curesma.NewClient(cfg, certs)
		if err != nil {
			_ = certs.Close()
			return nil, nil, err
		}
		return client, certs.Close, nil
	}
}

// Server exposes the run trigger and health endpoint.
type Server struct {
	service *transfer.Service
	// running serializes runs: a second trigger while one is in flight is
	// rejected, not queued.
	running sync.Mutex
}

func (s *Server) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Get("/healthz", s.handleHealth)
	router.Post("/transfer", s.handleTransfer)
	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "up"})
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	sel, err := transfer.ParseSelection(r.URL.Query().Get("types"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !s.running.TryLock() {
		http.Error(w, "a transfer run is already in progress", http.StatusConflict)
		return
	}
	defer s.running.Unlock()

	report, err := s.service.Run(r.Context(), sel)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Transfer run failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write transfer report")
	}
}
