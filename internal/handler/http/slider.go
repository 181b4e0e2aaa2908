package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	"github.com/kuvvetliisik/pharma-showcase/internal/repository"
	"github.com/kuvvetliisik/pharma-showcase/pkg/httputil"
	"github.com/kuvvetliisik/pharma-showcase/pkg/validator"
)

// SliderHandler handles HTTP requests for homepage slider endpoints.
type SliderHandler struct {
	repo   repository.SliderRepository
	logger *slog.Logger
}

// NewSliderHandler creates a new slider HTTP handler.
func NewSliderHandler(repo repository.SliderRepository, logger *slog.Logger) *SliderHandler {
	return &SliderHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateSliderRequest is the JSON request body for creating a slider.
// Order is assigned server-side from the current slide count.
type CreateSliderRequest struct {
	Image  string `json:"image" validate:"required,max=500"`
	Active *bool  `json:"active"`
}

// UpdateSliderRequest is the JSON request body for updating a slider.
type UpdateSliderRequest struct {
	Image  *string `json:"image" validate:"omitempty,min=1,max=500"`
	Order  *int    `json:"order" validate:"omitempty,min=1"`
	Active *bool   `json:"active"`
}

// ListSliders handles GET /api/sliders
//
// Only active slides are returned unless all=true is passed, which the
// admin panel uses to manage hidden slides.
func (h *SliderHandler) ListSliders(w http.ResponseWriter, r *http.Request) {
	filter := repository.SliderFilter{
		IncludeInactive: r.URL.Query().Get("all") == "true",
	}

	sliders, err := h.repo.List(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sliders})
}

// GetSlider handles GET /api/sliders/{id}
func (h *SliderHandler) GetSlider(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slider, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: slider})
}

// CreateSlider handles POST /api/sliders
func (h *SliderHandler) CreateSlider(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateSliderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	slider := &domain.Slider{
		ID:     uuid.New().String(),
		Image:  req.Image,
		Active: active,
	}

	if err := h.repo.Create(r.Context(), slider); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.logger.Info("slider created", slog.String("slider_id", slider.ID), slog.Int("order", slider.Order))

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: slider})
}

// UpdateSlider handles PUT /api/sliders/{id}
func (h *SliderHandler) UpdateSlider(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req UpdateSliderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	slider, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	if req.Image != nil {
		slider.Image = *req.Image
	}
	if req.Order != nil {
		slider.Order = *req.Order
	}
	if req.Active != nil {
		slider.Active = *req.Active
	}
	slider.ID = id

	if err := h.repo.Update(r.Context(), slider); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: slider})
}

// DeleteSlider handles DELETE /api/sliders/{id}
//
// Remaining slides keep their order values; gaps in the sequence are
// expected and the list sort tolerates them.
func (h *SliderHandler) DeleteSlider(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id, "status": "deleted"}})
}
