package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/romariotrain/project-media/internal/media/domain"
	"github.com/romariotrain/project-media/internal/media/gateway"
	"github.com/romariotrain/project-media/internal/media/models"
	"github.com/romariotrain/project-media/internal/media/query"
	"github.com/romariotrain/project-media/internal/media/service"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateMedia accepts a CreationRequest in either spelling.
func (h *Handler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	var req models.CreationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid json body")
		return
	}

	m, err := h.svc.Create(r.Context(), projectID, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

// BulkDelete returns the ids the store actually removed.
func (h *Handler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	var req BulkDeleteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid json body")
		return
	}

	acked, err := h.svc.Delete(r.Context(), projectID, req.IDs)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, BulkDeleteResponse{IDs: acked})
}

// ListMedia serves the gallery view of a project. Query parameters:
// q (search text), sort=recent, group=section.
func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	params := r.URL.Query()
	opts := query.Options{
		Query:      params.Get("q"),
		SortRecent: params.Get("sort") == "recent",
		Group:      params.Get("group") == "section",
	}

	res, err := h.svc.List(r.Context(), projectID, opts)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(res.Total))
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.GetMedia(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var nerr *domain.NormalizationError
	switch {
	case errors.As(err, &nerr):
		writeErrorJSON(w, http.StatusBadRequest, nerr.Error())
	case errors.Is(err, models.ErrInvalidArgument):
		writeErrorJSON(w, http.StatusBadRequest, "invalid argument")
	case errors.Is(err, models.ErrNotFound):
		writeErrorJSON(w, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrConflict):
		writeErrorJSON(w, http.StatusConflict, "conflict")
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		var rerr *gateway.RemoteError
		if errors.As(err, &rerr) {
			writeErrorJSON(w, http.StatusBadGateway, "store unavailable")
			return
		}
		writeErrorJSON(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
