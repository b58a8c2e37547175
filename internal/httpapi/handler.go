package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/govalues/daxie"
	"github.com/govalues/daxie/internal/config"
	"github.com/govalues/daxie/internal/metrics"
)

const maxBodyBytes = 1 << 20

// Handler wires the conversion endpoints to the daxie package.
type Handler struct {
	logger   *zap.Logger
	metrics  *metrics.Metrics
	validate *validator.Validate
	batch    config.BatchConfig
}

// New constructs a conversion handler with its dependencies.
func New(logger *zap.Logger, m *metrics.Metrics, batch config.BatchConfig) *Handler {
	return &Handler{
		logger:   logger,
		metrics:  m,
		validate: validator.New(),
		batch:    batch,
	}
}

// Register mounts the conversion endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1", func(v1 chi.Router) {
		v1.Get("/numeral", h.HandleNumeral)
		v1.Post("/numeral/batch", h.HandleNumeralBatch)
		v1.Get("/minor", h.HandleMinor)
		v1.Get("/major", h.HandleMajor)
		v1.Get("/grouped", h.HandleGrouped)
	})
}

// NumeralResponse is the result of a single numeral conversion.
type NumeralResponse struct {
	Amount  daxie.Canonical `json:"amount"`
	Grouped string          `json:"grouped"`
	Numeral string          `json:"numeral"`
}

// HandleNumeral handles GET /v1/numeral?amount= requests.
func (h *Handler) HandleNumeral(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("amount")
	if raw == "" {
		writeBadRequest(w, "query parameter amount is required")
		return
	}
	resp, err := h.numeral(raw)
	if err != nil {
		h.logger.Debug("numeral conversion rejected",
			zap.String("request_id", RequestID(r.Context())),
			zap.String("amount", raw),
			zap.Error(err),
		)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) numeral(raw string) (NumeralResponse, error) {
	a, err := daxie.Normalize(raw)
	if err == nil {
		var s string
		s, err = daxie.RenderNumeral(a)
		if err == nil {
			h.metrics.IncConversion("numeral", outcome(nil))
			return NumeralResponse{Amount: a, Grouped: a.Grouped(), Numeral: s}, nil
		}
	}
	h.metrics.IncConversion("numeral", outcome(err))
	return NumeralResponse{}, err
}

// BatchRequest is the body of POST /v1/numeral/batch.
type BatchRequest struct {
	Amounts []string `json:"amounts" validate:"required,min=1,dive,required,max=64"`
}

// BatchItem is the result for one amount of a batch, in request order.
// Exactly one of Numeral and Error is set.
type BatchItem struct {
	Input   string           `json:"input"`
	Amount  *daxie.Canonical `json:"amount,omitempty"`
	Numeral string           `json:"numeral,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// BatchResponse is the result of a batch conversion.
type BatchResponse struct {
	Items []BatchItem `json:"items"`
}

// HandleNumeralBatch handles POST /v1/numeral/batch requests.
// Amounts are converted concurrently, bounded by the batch configuration.
func (h *Handler) HandleNumeralBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeBadRequest(w, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if len(req.Amounts) > h.batch.MaxItems {
		writeBadRequest(w, fmt.Sprintf("at most %d amounts per batch", h.batch.MaxItems))
		return
	}

	items := make([]BatchItem, len(req.Amounts))
	var g errgroup.Group
	g.SetLimit(h.batch.Concurrency)
	for i, raw := range req.Amounts {
		g.Go(func() error {
			items[i] = h.batchItem(raw)
			return nil
		})
	}
	_ = g.Wait()

	h.logger.Debug("batch converted",
		zap.String("request_id", RequestID(r.Context())),
		zap.Int("items", len(items)),
	)
	writeJSON(w, http.StatusOK, BatchResponse{Items: items})
}

func (h *Handler) batchItem(raw string) BatchItem {
	resp, err := h.numeral(raw)
	if err != nil {
		return BatchItem{Input: raw, Error: errorCode(err)}
	}
	return BatchItem{Input: raw, Amount: &resp.Amount, Numeral: resp.Numeral}
}

// MinorResponse is the result of GET /v1/minor.
type MinorResponse struct {
	Minor int64 `json:"minor"`
}

// HandleMinor handles GET /v1/minor?major= requests.
func (h *Handler) HandleMinor(w http.ResponseWriter, r *http.Request) {
	major := r.URL.Query().Get("major")
	if major == "" {
		writeBadRequest(w, "query parameter major is required")
		return
	}
	minor, err := daxie.MajorToMinor(major)
	h.metrics.IncConversion("minor", outcome(err))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MinorResponse{Minor: minor})
}

// MajorResponse is the result of GET /v1/major.
type MajorResponse struct {
	Major string `json:"major"`
}

// HandleMajor handles GET /v1/major?minor= requests.
func (h *Handler) HandleMajor(w http.ResponseWriter, r *http.Request) {
	minor, err := strconv.ParseInt(r.URL.Query().Get("minor"), 10, 64)
	if err != nil {
		writeBadRequest(w, "query parameter minor must be an integer")
		return
	}
	h.metrics.IncConversion("major", outcome(nil))
	writeJSON(w, http.StatusOK, MajorResponse{Major: daxie.MinorToMajor(minor)})
}

// GroupedResponse is the result of GET /v1/grouped.
type GroupedResponse struct {
	Grouped string `json:"grouped"`
}

// HandleGrouped handles GET /v1/grouped?amount= requests.
func (h *Handler) HandleGrouped(w http.ResponseWriter, r *http.Request) {
	amount := r.URL.Query().Get("amount")
	if amount == "" {
		writeBadRequest(w, "query parameter amount is required")
		return
	}
	h.metrics.IncConversion("grouped", outcome(nil))
	writeJSON(w, http.StatusOK, GroupedResponse{Grouped: daxie.FormatGrouped(amount)})
}
