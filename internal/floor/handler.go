package floor

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/floorboard/service/internal/response"
)

// maxPublishBytes bounds a publish body; floors may carry inline image data.
const maxPublishBytes = 64 << 20

// Handler holds HTTP handlers for floor endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new floor Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type publishRequest struct {
	Floors []map[string]any `json:"floors" swaggertype:"array,object"`
}

type floorsResponse struct {
	Floors []Floor `json:"floors"`
}

// List godoc
//
//	@Summary		List floors
//	@Description	Returns every published floor ordered by sortOrder.
//	@Tags			floors
//	@Produce		json
//	@Success		200	{object}	floorsResponse
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/floors [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	floors, err := h.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list floors", "backend", h.svc.Backend(), "err", err)
		response.InternalError(w, "Failed to load floors")
		return
	}
	response.OK(w, floorsResponse{Floors: floors})
}

// Publish godoc
//
//	@Summary		Publish floors
//	@Description	Replaces the whole floor set. Every floor needs url or imageData; other fields default.
//	@Tags			floors
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		publishRequest	true	"Floors to publish"
//	@Success		200		{object}	floorsResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/floors [put]
//	@Router			/floors/publish [put]
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPublishBytes)

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		response.BadRequest(w, "floors must be an array of floor objects")
		return
	}

	floors, err := h.svc.Publish(r.Context(), req.Floors)
	switch {
	case errors.Is(err, ErrEmptyPublish), errors.Is(err, ErrInvalidFloor):
		response.BadRequest(w, err.Error())
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "publish floors", "backend", h.svc.Backend(), "count", len(req.Floors), "err", err)
		response.InternalError(w, "Failed to publish floors")
		return
	}

	slog.InfoContext(r.Context(), "floors published", "backend", h.svc.Backend(), "count", len(floors))
	response.OK(w, floorsResponse{Floors: floors})
}

// Delete godoc
//
//	@Summary		Delete a floor
//	@Description	Removes one floor. The relational backend answers {floor}; the manifest backend also returns the remaining floors.
//	@Tags			floors
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Floor ID"
//	@Success		200	{object}	DeleteResult
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		401	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		409	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/floors/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.svc.Delete(r.Context(), id)
	switch {
	case errors.Is(err, ErrInvalidID):
		response.BadRequest(w, "Invalid floor id")
		return
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Floor not found")
		return
	case errors.Is(err, ErrConflict):
		response.Conflict(w, "Floors changed while deleting; reload and retry")
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "delete floor", "backend", h.svc.Backend(), "id", id, "err", err)
		response.InternalError(w, "Failed to delete floor")
		return
	}

	response.OK(w, res)
}
