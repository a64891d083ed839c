// Package server exposes the comparison engine over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/fixedincome-compare/internal/config"
	"github.com/iwvelando/fixedincome-compare/internal/simulation"
	"github.com/iwvelando/fixedincome-compare/pkg/mathutil"
	"github.com/iwvelando/fixedincome-compare/pkg/output"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	limiter       *rate.Limiter
	version       string
}

// NewHandler constructs the HTTP handler that serves the simulation API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg, _ = LoadConfig("")
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: cfg.UploadSizeBytes(),
		limiter:       rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
		version:       trimmedVersion,
	}

	mux := http.NewServeMux()

	// Simulation API endpoint (JSON config payload)
	mux.HandleFunc("/api/simulate", h.handleSimulate)

	// Simulation API endpoint (YAML file upload)
	mux.HandleFunc("/api/simulate/upload", h.handleSimulateUpload)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return h.rateLimit(h.withRequestID(mux))
}

// withRequestID tags each request with a UUID for log correlation and echoes
// it back in the X-Request-Id header.
func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)
		r.Header.Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r)
	})
}

// rateLimit rejects requests above the configured rate with 429.
func (h *handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			h.logger.Warn("request rate limited",
				zap.String("op", "server.rateLimit"),
				zap.String("path", r.URL.Path),
			)
			h.writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

type simulateResponse struct {
	Scenarios  []scenarioSummary   `json:"scenarios"`
	Comparison *comparisonSummary  `json:"comparison,omitempty"`
	CSV        string              `json:"csv"`
	Warnings   []string            `json:"warnings,omitempty"`
	Duration   string              `json:"duration"`
	RequestID  string              `json:"requestId"`
}

type scenarioSummary struct {
	Name                  string    `json:"name"`
	Instrument            string    `json:"instrument"`
	Regime                string    `json:"regime"`
	MonthlyRate           float64   `json:"monthlyRate"`
	TotalContributed      float64   `json:"totalContributed"`
	GrossFinalValue       float64   `json:"grossFinalValue"`
	TaxDue                float64   `json:"taxDue"`
	TaxRate               float64   `json:"taxRate"`
	NetFinalValue         float64   `json:"netFinalValue"`
	NetEarnings           float64   `json:"netEarnings"`
	AnnualizedNetYieldPct float64   `json:"annualizedNetYieldPct"`
	MonthlyBalances       []float64 `json:"monthlyBalances"`
}

type comparisonSummary struct {
	BestName      string  `json:"bestName"`
	BestNet       float64 `json:"bestNet"`
	BestEarnings  float64 `json:"bestEarnings"`
	BestYieldPct  float64 `json:"bestYieldPct"`
	RunnerUpName  string  `json:"runnerUpName,omitempty"`
	GapToRunnerUp float64 `json:"gapToRunnerUp,omitempty"`
	GapPercent    float64 `json:"gapPercent,omitempty"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var payload map[string]interface{}
	if err := json.NewDecoder(io.LimitReader(r.Body, h.maxUploadSize)).Decode(&payload); err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), "server.handleSimulate")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	configBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleSimulate")
		return
	}

	h.runSimulation(w, r, configBytes, start, "server.handleSimulate")
}

func (h *handler) handleSimulateUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handleSimulateUpload")
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), "server.handleSimulateUpload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "missing configuration file", "server.handleSimulateUpload")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleSimulateUpload"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), "server.handleSimulateUpload")
		return
	}

	h.runSimulation(w, r, buf.Bytes(), start, "server.handleSimulateUpload")
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) runSimulation(w http.ResponseWriter, r *http.Request, configBytes []byte, start time.Time, op string) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()

	results, err := simulation.Compare(h.logger, *cfg)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to compute comparison: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	requestID := r.Header.Get("X-Request-Id")

	response := simulateResponse{
		Scenarios:  buildScenarioSummaries(results),
		Comparison: buildComparisonSummary(simulation.Rank(results)),
		CSV:        output.CsvString(results),
		Warnings:   warnings,
		Duration:   elapsed.String(),
		RequestID:  requestID,
	}

	h.logger.Info("comparison computed",
		zap.String("op", op),
		zap.String("requestId", requestID),
		zap.Int("scenarios", len(response.Scenarios)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func buildScenarioSummaries(results []simulation.ScenarioResult) []scenarioSummary {
	summaries := make([]scenarioSummary, 0, len(results))
	for _, result := range results {
		projection := result.Projection
		summaries = append(summaries, scenarioSummary{
			Name:                  result.Name,
			Instrument:            string(result.Instrument),
			Regime:                result.RegimeLabel,
			MonthlyRate:           result.MonthlyRate,
			TotalContributed:      mathutil.Round(projection.TotalContributed),
			GrossFinalValue:       mathutil.Round(projection.GrossFinalValue),
			TaxDue:                mathutil.Round(projection.TaxDue),
			TaxRate:               projection.TaxRate,
			NetFinalValue:         mathutil.Round(projection.NetFinalValue),
			NetEarnings:           mathutil.Round(result.NetEarnings()),
			AnnualizedNetYieldPct: projection.AnnualizedNetYieldPct,
			MonthlyBalances:       projection.MonthlyBalances,
		})
	}
	return summaries
}

func buildComparisonSummary(comparison *simulation.Comparison) *comparisonSummary {
	if comparison == nil {
		return nil
	}
	return &comparisonSummary{
		BestName:      comparison.BestName,
		BestNet:       mathutil.Round(comparison.BestNet),
		BestEarnings:  mathutil.Round(comparison.BestEarnings),
		BestYieldPct:  comparison.BestYieldPct,
		RunnerUpName:  comparison.RunnerUpName,
		GapToRunnerUp: mathutil.Round(comparison.GapToRunnerUp),
		GapPercent:    comparison.GapPercent,
	}
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("simulation request failed",
		zap.String("op", op),
		zap.String("requestId", r.Header.Get("X-Request-Id")),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
