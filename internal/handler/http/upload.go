package http

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/kuvvetliisik/pharma-showcase/internal/domain"
	"github.com/kuvvetliisik/pharma-showcase/internal/service"
	"github.com/kuvvetliisik/pharma-showcase/pkg/httputil"
)

// UploadHandler handles multipart image uploads for the admin panel.
type UploadHandler struct {
	service *service.UploadService
	logger  *slog.Logger
}

// NewUploadHandler creates a new upload HTTP handler.
func NewUploadHandler(svc *service.UploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		service: svc,
		logger:  logger,
	}
}

// UploadResponse is the JSON response body for a completed upload.
type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

// Upload handles POST /api/upload
//
// Expects a multipart form with a "file" part and an optional "type"
// value naming the target folder (products, brands or sliders).
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Headroom above the per-file limit so multipart overhead does not
	// reject files right at the cap; oversized files still fail the
	// size check in the service.
	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxUploadSize+1<<20)

	if err := r.ParseMultipartForm(domain.MaxUploadSize); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid multipart form: " + err.Error()},
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "missing file field"},
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "failed to read file: " + err.Error()},
		})
		return
	}

	result, err := h.service.Upload(r.Context(), &service.UploadInput{
		Target:      r.FormValue("type"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        bytes.NewReader(data),
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: UploadResponse{
		URL:      result.URL,
		FileName: result.FileName,
	}})
}
