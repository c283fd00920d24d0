// Package server implements the HTTP API that exposes every calculator
// over JSON, plus the currency registry and version metadata.
package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/calchub/calchub/internal/cache"
	"github.com/calchub/calchub/internal/config"
	"github.com/calchub/calchub/pkg/constants"
	"github.com/calchub/calchub/pkg/currency"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	store       cache.Cache
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler serving the calculator API. A nil
// store disables response caching; a nil limiter disables rate limiting.
func NewHandler(logger *zap.Logger, cfg *config.Configuration, store cache.Cache, limiter *RateLimiter, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodySize := constants.DefaultMaxBodyBytes
	if cfg != nil && cfg.BodySizeBytes() > 0 {
		maxBodySize = cfg.BodySizeBytes()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, store: store, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Calculator API endpoints
	mux.HandleFunc("/api/calc/sip", h.handleSIP)
	mux.HandleFunc("/api/calc/mortgage", h.handleMortgage)
	mux.HandleFunc("/api/calc/compound-interest", h.handleCompound)
	mux.HandleFunc("/api/calc/gst", h.handleGST)
	mux.HandleFunc("/api/calc/discount", h.handleDiscount)
	mux.HandleFunc("/api/calc/percentage", h.handlePercentage)
	mux.HandleFunc("/api/calc/bmi", h.handleBMI)
	mux.HandleFunc("/api/calc/calorie", h.handleCalorie)
	mux.HandleFunc("/api/calc/paycheck", h.handlePaycheck)
	mux.HandleFunc("/api/calc/pregnancy", h.handlePregnancy)

	// Currency registry for the selector UI
	mux.HandleFunc("/api/currencies", h.handleCurrencies)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	if limiter != nil {
		return RateLimitMiddleware(limiter, mux)
	}
	return mux
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

type currenciesResponse struct {
	Currencies []currency.Currency `json:"currencies"`
}

func (h *handler) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	list := currency.BySet(r.URL.Query().Get("list"))
	filtered := currency.Filter(list, r.URL.Query().Get("q"))

	h.writeJSON(w, http.StatusOK, currenciesResponse{Currencies: filtered})
}

// computeFunc turns a decoded request body into a response payload. Any
// returned error reads as a client error.
type computeFunc func(body []byte) (interface{}, error)

// handleCalc is the shared skeleton for the calculator endpoints: method
// check, body limit, cache lookup by request digest, compute, store.
func (h *handler) handleCalc(w http.ResponseWriter, r *http.Request, op string, compute computeFunc) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return
	}

	key := requestDigest(r.URL.Path, body)
	if h.store != nil {
		if cached, ok := h.store.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			fmt.Fprintln(w, cached)
			return
		}
	}

	payload, err := compute(body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode response: %v", err), op)
		return
	}

	if h.store != nil {
		h.store.Set(r.Context(), key, string(encoded))
	}

	h.logger.Info("calculation served",
		zap.String("op", op),
		zap.Duration("duration", time.Since(start)),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(append(encoded, '\n')); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func requestDigest(path string, body []byte) string {
	sum := sha256.New()
	sum.Write([]byte(path))
	sum.Write([]byte{0})
	sum.Write(body)
	return hex.EncodeToString(sum.Sum(nil))
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
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
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
