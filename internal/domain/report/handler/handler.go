// Package handler exposes statement analysis over HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/availlac/releve/internal/domain/report"
)

// Handler serves the statement analysis endpoints.
type Handler struct {
	svc            *report.Service
	logger         *slog.Logger
	maxUploadBytes int64
}

// NewHandler creates the report HTTP handler.
func NewHandler(svc *report.Service, logger *slog.Logger, maxUploadBytes int64) *Handler {
	return &Handler{
		svc:            svc,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes registers the handler's endpoints on the router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/statements/analyze", h.AnalyzeStatement)
	r.Get("/statements/{id}", h.GetReport)
	r.Get("/statements/{id}/suggest", h.SuggestDescriptions)
	r.Get("/statements/{id}/document", h.DownloadDocument)
}

type analyzeResponse struct {
	ID        string        `json:"id"`
	PageCount int           `json:"page_count"`
	CreatedAt time.Time     `json:"created_at"`
	Report    report.Result `json:"report"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// AnalyzeStatement accepts a PDF document body, runs the extraction
// pipeline and returns the report filtered by the query parameters.
func (h *Handler) AnalyzeStatement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := io.ReadAll(io.LimitReader(r.Body, h.maxUploadBytes+1))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		h.writeError(w, http.StatusRequestEntityTooLarge, "document exceeds upload limit")
		return
	}
	if len(data) == 0 {
		h.writeError(w, http.StatusBadRequest, "empty document")
		return
	}

	spec, err := filterFromQuery(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := h.svc.Analyze(ctx, data)
	if err != nil {
		h.logger.Error("statement analysis failed", slog.Any("error", err))
		h.writeError(w, http.StatusUnprocessableEntity, "failed to analyze document")
		return
	}

	h.writeJSON(w, http.StatusOK, analyzeResponse{
		ID:        analysis.ID.String(),
		PageCount: analysis.PageCount,
		CreatedAt: analysis.CreatedAt,
		Report:    h.svc.Report(analysis, spec),
	})
}

// GetReport re-filters a previously analyzed statement.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	analysis, ok := h.svc.Get(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, "analysis not found")
		return
	}

	spec, err := filterFromQuery(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, analyzeResponse{
		ID:        analysis.ID.String(),
		PageCount: analysis.PageCount,
		CreatedAt: analysis.CreatedAt,
		Report:    h.svc.Report(analysis, spec),
	})
}

type suggestResponse struct {
	Suggestions []report.Suggestion `json:"suggestions"`
}

// SuggestDescriptions returns description completions for a stored analysis.
func (h *Handler) SuggestDescriptions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	suggestions, err := h.svc.Suggest(id, query)
	if err != nil {
		if errors.Is(err, report.ErrAnalysisNotFound) {
			h.writeError(w, http.StatusNotFound, "analysis not found")
			return
		}
		h.logger.Error("suggestion lookup failed", slog.String("analysis_id", id), slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "suggestion lookup failed")
		return
	}

	h.writeJSON(w, http.StatusOK, suggestResponse{Suggestions: suggestions})
}

// DownloadDocument streams back the archived statement document.
func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	rc, info, err := h.svc.OpenDocument(r.Context(), id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "document not found")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+info.Name)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Error("failed to stream document", slog.String("analysis_id", id.String()), slog.Any("error", err))
	}
}

func filterFromQuery(r *http.Request) (report.FilterSpec, error) {
	q := r.URL.Query()
	spec := report.FilterSpec{
		SearchText:   q.Get("search"),
		TypeContains: q.Get("type_contains"),
	}
	if cats, ok := q["category"]; ok {
		spec.Categories = cats
	}

	if from := q.Get("date_from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return report.FilterSpec{}, errors.New("invalid date_from, expected YYYY-MM-DD")
		}
		spec.DateFrom = t
	}
	if to := q.Get("date_to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return report.FilterSpec{}, errors.New("invalid date_to, expected YYYY-MM-DD")
		}
		spec.DateTo = t
	}
	return spec, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}
