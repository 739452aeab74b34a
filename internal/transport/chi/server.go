package chi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/navigator/internal/domain"
	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	healthuc "github.com/kailas-cloud/navigator/internal/usecase/health"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Error codes returned in ErrorResponse.Code.
const (
	CodeBadRequest       = "bad_request"
	CodeValidationFailed = "validation_failed"
	CodeUnauthorized     = "unauthorized"
	CodeInternalError    = "internal_error"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the JSON body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Advisor is the consumer interface for the advisory features (ISP).
type Advisor interface {
	AnalyzeRisk(ctx context.Context, req advisory.RiskRequest) advisory.RiskResult
	ScanReputation(ctx context.Context, req advisory.ReputationRequest) advisory.ReputationResult
	MatchInvestors(ctx context.Context, req advisory.InvestorMatchRequest) advisory.InvestorMatchResult
	PitchFeedback(ctx context.Context, req advisory.PitchFeedbackRequest) advisory.PitchFeedbackResult
	CompetitorRadar(ctx context.Context, req advisory.CompetitorRadarRequest) advisory.CompetitorRadarResult
	EstimateTraction(ctx context.Context, req advisory.TractionRequest) advisory.TractionResult
	BuildBuzz(ctx context.Context, req advisory.BuzzRequest) advisory.BuzzResult
	LegalAssistance(ctx context.Context, req advisory.LegalRequest) advisory.LegalResult
	ExploreExitStrategies(ctx context.Context, req advisory.ExitRequest) advisory.ExitResult
	NavigateTalent(ctx context.Context, req advisory.TalentRequest) advisory.TalentResult
}

// HealthChecker is the consumer interface for the health service (ISP).
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the advisory HTTP API.
type Server struct {
	advisor       Advisor
	health        HealthChecker
	validator     *validator
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. It fails only if the embedded
// request schemas do not compile.
func NewServer(advisor Advisor, health HealthChecker, logger *zap.Logger) (*Server, error) {
	v, err := newValidator()
	if err != nil {
		return nil, err
	}
	s := &Server{
		advisor:   advisor,
		health:    health,
		validator: v,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, CodeValidationFailed),
	}
	return s, nil
}

// Mount registers the API routes on r.
func (s *Server) Mount(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze-risk", handle(s, "analyze_risk", s.advisor.AnalyzeRisk))
		r.Post("/scan-reputation", handle(s, "scan_reputation", s.advisor.ScanReputation))
		r.Post("/match-investors", handle(s, "match_investors", s.advisor.MatchInvestors))
		r.Post("/pitch-feedback", handle(s, "pitch_feedback", s.advisor.PitchFeedback))
		r.Post("/competitor-radar", handle(s, "competitor_radar", s.advisor.CompetitorRadar))
		r.Post("/traction-estimator", handle(s, "traction_estimator", s.advisor.EstimateTraction))
		r.Post("/buzz-builder", handle(s, "buzz_builder", s.advisor.BuildBuzz))
		r.Post("/legal-assistance", handle(s, "legal_assistance", s.advisor.LegalAssistance))
		r.Post("/exit-strategy-explorer", handle(s, "exit_strategy_explorer", s.advisor.ExploreExitStrategies))
		r.Post("/talent-navigator", handle(s, "talent_navigator", s.advisor.NavigateTalent))
	})
}

// request is implemented by every advisory request type.
type request interface {
	Validate() error
}

// handle builds a POST handler: read body, check it against the named
// schema, decode, validate, run the feature. Features never fail, so a
// request that passes validation always gets 200.
func handle[Req request, Res any](
	s *Server, schema string, op func(context.Context, Req) Res,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
			return
		}
		if !json.Valid(body) {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: malformed JSON")
			return
		}
		if err := s.validator.validate(schema, body); err != nil {
			writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
			return
		}

		var req Req
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			s.handleDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, op(r.Context(), req))
	}
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
