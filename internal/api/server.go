// Package api exposes the vault over HTTP: signed actions in, JSON views of
// the contract tables out.
package api

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"RedeemVault/internal/engine"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/logger"
	"RedeemVault/internal/names"
	"RedeemVault/internal/storage"
)

const (
	// maxActionSize is the maximum action envelope size in bytes.
	maxActionSize = 64 << 10

	// requestIDHeader carries the per-request id.
	requestIDHeader = "X-Request-Id"
)

// Server is the HTTP API server.
type Server struct {
	addr    string                           // addr is the HTTP listen address
	engine  *engine.Engine                   // engine executes actions
	db      *storage.Storage                 // db backs snapshot export
	keys    map[names.Name]ed25519.PublicKey // keys are the registered signing keys
	started time.Time                        // started is reported by /status
	server  *http.Server                     // server is the underlying HTTP server
}

// New creates a new HTTP API server.
func New(addr string, e *engine.Engine, db *storage.Storage, keys map[names.Name]ed25519.PublicKey) *Server {
	return &Server{
		addr:    addr,
		engine:  e,
		db:      db,
		keys:    keys,
		started: time.Now(),
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/actions", s.handleAction)
	mux.HandleFunc("GET /v1/config", s.handleConfig)
	mux.HandleFunc("GET /v1/pending", s.handlePendingList)
	mux.HandleFunc("GET /v1/pending/{id}", s.handlePending)
	mux.HandleFunc("GET /v1/redemption/{id}", s.handleRedemption)
	mux.HandleFunc("GET /v1/redemptions/{collection}", s.handleRedemptions)
	mux.HandleFunc("GET /v1/balances", s.handleBalances)
	mux.HandleFunc("GET /v1/balances/{collection}", s.handleBalance)
	mux.HandleFunc("GET /v1/assets/{id}", s.handleAsset)
	mux.HandleFunc("GET /v1/accounts/{owner}/assets", s.handleAccountAssets)
	mux.HandleFunc("GET /v1/journal", s.handleJournal)
	mux.HandleFunc("GET /v1/snapshot", s.handleSnapshot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)

	return withRequestID(mux)
}

// Start starts the HTTP server in a goroutine.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("http api started", "addr", s.addr)

		if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// withRequestID tags every request with a uuid, reusing a caller-supplied one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// handleHealth handles GET /health requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// handleStatus handles GET /status requests.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	seq, digest, err := s.engine.JournalHead()
	if err != nil {
		writeFault(w, r, err)
		return
	}

	pending, err := s.engine.PendingAll()
	if err != nil {
		writeFault(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"contract":      s.engine.Self(),
		"pending":       len(pending),
		"journalSeq":    seq,
		"journalDigest": hexDigest(digest),
		"uptime":        time.Since(s.started).Round(time.Second).String(),
	})
}

// statusOf maps an error kind to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, fault.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, fault.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fault.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, fault.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, fault.ErrResourceExhausted):
		return http.StatusInsufficientStorage
	case errors.Is(err, fault.ErrSupplyExceeded), errors.Is(err, fault.ErrInvalidPolicy):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeFault writes a classified error response.
func writeFault(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)

	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			"path", r.URL.Path,
			"request", w.Header().Get(requestIDHeader),
			"error", err,
		)
	}

	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  fault.Code(err),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an unclassified error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}
