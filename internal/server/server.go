// Package server exposes the calculators over a JSON HTTP API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/finance-calculator/internal/calculator"
	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/pkg/output"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const tracerName = "github.com/iwvelando/finance-calculator/internal/server"

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	validate    *validator.Validate
	tracer      trace.Tracer
}

type calculateRequest struct {
	Calculations []config.Calculation `json:"calculations" yaml:"calculations" validate:"required,min=1,max=100,dive"`
}

type calculateResponse struct {
	Results  []calculator.Result `json:"results"`
	CSV      string              `json:"csv"`
	Warnings []string            `json:"warnings,omitempty"`
	Duration string              `json:"duration"`
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: cfg.BodySizeBytes(),
		version:     trimmedVersion,
		validate:    newValidator(),
		tracer:      otel.Tracer(tracerName),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)
	if cfg.RateLimit.Enabled {
		r.Use(h.rateLimit(newRateLimiter(cfg.RateLimit)))
	}

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)
		r.Get("/calculators", h.handleCalculators)
		r.Post("/calculate", h.handleCalculate)
		r.Post("/calculate/{type}", h.handleCalculateType)
	})

	return r
}

// newValidator reports field errors by their JSON names and knows the
// calctype tag.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("calctype", func(fl validator.FieldLevel) bool {
		return calculator.Supported(fl.Field().String())
	})
	return v
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleCalculators(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string][]string{
		"calculators": calculator.Types(),
	})
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	start := time.Now()

	var req calculateRequest
	if status, err := h.decodeBody(w, r, &req); err != nil {
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, validationMessage(err), op)
		return
	}

	results := make([]calculator.Result, 0, len(req.Calculations))
	for _, calc := range req.Calculations {
		if calc.Disabled {
			continue
		}
		result, err := h.calculate(r, calc)
		if err != nil {
			h.respondErrorWithOp(w, statusFor(err), err.Error(), op)
			return
		}
		results = append(results, result)
	}

	conf := config.Configuration{Calculations: req.Calculations}
	h.writeJSON(w, http.StatusOK, calculateResponse{
		Results:  results,
		CSV:      output.CsvString(results),
		Warnings: conf.ValidateConfiguration(),
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleCalculateType(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculateType"

	calcType := chi.URLParam(r, "type")
	if !calculator.Supported(calcType) {
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("%v: %q", calculator.ErrUnsupportedType, calcType), op)
		return
	}

	var calc config.Calculation
	if status, err := h.decodeBody(w, r, &calc); err != nil {
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}
	if calc.Type != "" && calc.Type != calcType {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("body type %q does not match path type %q", calc.Type, calcType), op)
		return
	}
	calc.Type = calcType
	if calc.Name == "" {
		calc.Name = calcType
	}
	calc.Disabled = false

	if err := h.validate.Struct(calc); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, validationMessage(err), op)
		return
	}

	result, err := h.calculate(r, calc)
	if err != nil {
		h.respondErrorWithOp(w, statusFor(err), err.Error(), op)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// calculate runs one calculation inside its own span and records its metrics.
func (h *handler) calculate(r *http.Request, calc config.Calculation) (calculator.Result, error) {
	_, span := h.tracer.Start(r.Context(), "calculate "+calc.Type,
		trace.WithAttributes(
			attribute.String("calculation.name", calc.Name),
			attribute.String("calculation.type", calc.Type),
		),
	)
	defer span.End()

	start := time.Now()
	result, err := calculator.Calculate(calc)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		observeCalculation("unknown", outcomeError, elapsed)
		return result, fmt.Errorf("calculation %q: %w", calc.Name, err)
	case !result.Valid:
		span.SetAttributes(attribute.String("calculation.message", result.Message))
		observeCalculation(calc.Type, outcomeInvalid, elapsed)
	default:
		observeCalculation(calc.Type, outcomeValid, elapsed)
	}

	h.logger.Debug("calculation complete",
		zap.String("op", "server.calculate"),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("name", calc.Name),
		zap.String("type", calc.Type),
		zap.Bool("valid", result.Valid),
		zap.Duration("elapsed", elapsed),
	)
	return result, nil
}

// decodeBody reads a JSON or YAML body, chosen by Content-Type, into dst.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds limit of %d bytes", h.maxBodySize)
		}
		return http.StatusBadRequest, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return http.StatusBadRequest, errors.New("request body is empty")
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.Contains(mediaType, "yaml") {
		if err := yaml.Unmarshal(data, dst); err != nil {
			return http.StatusBadRequest, fmt.Errorf("failed to decode YAML body: %w", err)
		}
		return http.StatusOK, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return http.StatusBadRequest, fmt.Errorf("failed to decode JSON body: %w", err)
	}
	return http.StatusOK, nil
}

func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Sprintf("invalid request: %v", err)
	}
	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			messages = append(messages, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return "invalid request: " + strings.Join(messages, "; ")
}

func statusFor(err error) int {
	if errors.Is(err, calculator.ErrUnsupportedType) || errors.Is(err, calculator.ErrMissingName) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
