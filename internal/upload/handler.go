package upload

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/floorboard/service/internal/response"
)

const (
	formField = "image"
	// multipart parts beyond this stay on disk while the request is handled
	memoryLimit = 8 << 20

	notConfiguredMessage = "S3 is not configured. Set AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION and S3_BUCKET."
)

// Handler holds the image upload endpoint.
type Handler struct {
	svc      *Service
	maxBytes int64
}

// NewHandler creates an upload Handler that rejects bodies over maxBytes.
func NewHandler(svc *Service, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

// UploadFloorImage godoc
//
//	@Summary		Upload a floor image
//	@Description	Stores a floor plan image and returns its object key and public URL.
//	@Tags			storage
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Floor plan image"
//	@Success		200		{object}	Result
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		413		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/storage/floors [post]
func (h *Handler) UploadFloorImage(w http.ResponseWriter, r *http.Request) {
	if !h.svc.Configured() {
		response.InternalError(w, notConfiguredMessage)
		return
	}

	if r.ContentLength > h.maxBytes {
		response.Error(w, http.StatusRequestEntityTooLarge, "Image is too large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(memoryLimit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusRequestEntityTooLarge, "Image is too large")
			return
		}
		response.BadRequest(w, "No image uploaded")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(formField)
	if err != nil {
		response.BadRequest(w, "No image uploaded")
		return
	}
	defer file.Close()

	res, err := h.svc.Upload(r.Context(), header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			response.InternalError(w, notConfiguredMessage)
			return
		}
		slog.ErrorContext(r.Context(), "upload floor image", "filename", header.Filename, "err", err)
		response.InternalError(w, "Failed to upload image")
		return
	}

	slog.InfoContext(r.Context(), "floor image uploaded", "key", res.Key, "bytes", header.Size)
	response.OK(w, res)
}
