package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	eventledger "flexyfins/contexts/mission-control/event-ledger"
	ledgererrors "flexyfins/contexts/mission-control/event-ledger/domain/errors"
	ledgerhttp "flexyfins/contexts/mission-control/event-ledger/transport/http"
	runbookservice "flexyfins/contexts/mission-control/runbook-service"
	runbookentities "flexyfins/contexts/mission-control/runbook-service/domain/entities"
	runbookerrors "flexyfins/contexts/mission-control/runbook-service/domain/errors"
	runbookhttp "flexyfins/contexts/mission-control/runbook-service/transport/http"
	_ "flexyfins/internal/platform/httpserver/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	serviceName string
	ledger      eventledger.Module
	runbooks    runbookservice.Module
	dashboard   bool
}

func New(
	ledger eventledger.Module,
	runbooks runbookservice.Module,
	logger *slog.Logger,
	addr string,
	serviceName string,
	dashboard bool,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		serviceName: serviceName,
		ledger:      ledger,
		runbooks:    runbooks,
		dashboard:   dashboard,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("POST /api/gd/ingest", s.handleIngest)
	s.mux.HandleFunc("GET /api/gd/summary", s.handleSummary)
	s.mux.HandleFunc("GET /api/gd/latest", s.handleLatestPerMission)
	s.mux.HandleFunc("GET /api/gd/proof-matrix", s.handleProofMatrix)
	s.mux.HandleFunc("GET /api/gd/settlement-score", s.handleSettlementScore)
	s.mux.HandleFunc("GET /api/gd/runbook/{reason_code}", s.handleRunbook)

	if s.dashboard {
		s.mux.HandleFunc("GET /dashboard", s.handleDashboard)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":  true,
		"app": s.serviceName,
		"ts":  time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req ledgerhttp.IngestEnvelopeRequest
	if err := decoder.Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON with known fields only")
		return
	}

	resp, err := s.ledger.Handler.IngestEnvelopeHandler(r.Context(), req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.SummaryHandler(r.Context())
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLatestPerMission(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.LatestPerMissionHandler(r.Context(), limit)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProofMatrix(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.ProofMatrixHandler(r.Context(), limit)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSettlementScore(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.SettlementScoreHandler(r.Context(), limit)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRunbook(w http.ResponseWriter, r *http.Request) {
	reasonCode := r.PathValue("reason_code")
	resp, err := s.runbooks.Handler.GetRunbookHandler(r.Context(), reasonCode)
	if err != nil {
		writeRunbookDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
		return 0, false
	}
	return limit, true
}

func writeLedgerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgererrors.ErrInvalidMissionID):
		writeLedgerError(w, http.StatusBadRequest, "invalid_mission_id", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidEnvelope):
		writeLedgerError(w, http.StatusBadRequest, "invalid_envelope", err.Error())
	default:
		writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRunbookDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, runbookerrors.ErrRunbookNotFound) {
		writeJSON(w, http.StatusNotFound, runbookhttp.ErrorResponse{
			Code:       "runbook_not_found",
			Message:    err.Error(),
			KnownCodes: runbookentities.KnownCodes(),
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, runbookhttp.ErrorResponse{
		Code:    "internal_error",
		Message: "internal server error",
	})
}

func writeLedgerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
