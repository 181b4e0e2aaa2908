package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	"github.com/kuvvetliisik/pharma-showcase/internal/repository"
	"github.com/kuvvetliisik/pharma-showcase/pkg/httputil"
	"github.com/kuvvetliisik/pharma-showcase/pkg/validator"
)

// MessageHandler handles HTTP requests for contact message endpoints.
// New messages come in through the public contact form; the remaining
// endpoints back the admin inbox.
type MessageHandler struct {
	repo    repository.MessageRepository
	logger  *slog.Logger
	nowFunc func() time.Time
}

// NewMessageHandler creates a new message HTTP handler.
func NewMessageHandler(repo repository.MessageRepository, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		repo:    repo,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// ContactRequest is the JSON request body for the public contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Subject string `json:"subject" validate:"omitempty,max=50"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

// UpdateMessageRequest is the JSON request body for updating a message.
// In practice only the read flag changes, but partial field edits are
// accepted the same way the other resources handle updates.
type UpdateMessageRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Subject *string `json:"subject" validate:"omitempty,max=50"`
	Message *string `json:"message" validate:"omitempty,min=1,max=5000"`
	Read    *bool   `json:"read"`
}

// ListMessages handles GET /api/messages
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.repo.List(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: messages})
}

// GetMessage handles GET /api/messages/{id}
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	message, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: message})
}

// CreateMessage handles POST /api/contact and POST /api/messages.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req ContactRequest
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

	subject := domain.NormalizeSubject(req.Subject)

	message := &domain.Message{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Subject:      subject,
		SubjectLabel: domain.SubjectLabel(subject),
		Message:      req.Message,
		Date:         h.nowFunc().UTC(),
		Read:         false,
	}

	if err := h.repo.Create(r.Context(), message); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.logger.Info("contact message received",
		slog.String("message_id", message.ID),
		slog.String("subject", message.Subject),
	)

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: message})
}

// UpdateMessage handles PUT /api/messages/{id}
func (h *MessageHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req UpdateMessageRequest
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

	message, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	if req.Name != nil {
		message.Name = *req.Name
	}
	if req.Email != nil {
		message.Email = *req.Email
	}
	if req.Phone != nil {
		message.Phone = *req.Phone
	}
	if req.Subject != nil {
		message.Subject = domain.NormalizeSubject(*req.Subject)
		message.SubjectLabel = domain.SubjectLabel(message.Subject)
	}
	if req.Message != nil {
		message.Message = *req.Message
	}
	if req.Read != nil {
		message.Read = *req.Read
	}
	message.ID = id

	if err := h.repo.Update(r.Context(), message); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: message})
}

// DeleteMessage handles DELETE /api/messages/{id}
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id, "status": "deleted"}})
}
