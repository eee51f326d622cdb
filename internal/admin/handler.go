package admin

import (
	"log/slog"
	"net/http"

	"github.com/floorboard/service/internal/middleware"
	"github.com/floorboard/service/internal/response"
)

// Handler holds HTTP handlers for admin endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new admin Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetMe godoc
//
//	@Summary		Get current admin
//	@Description	Returns the email and tags of the authenticated admin.
//	@Tags			admins
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	Profile
//	@Failure		401	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/me [get]
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AdminID(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	p, err := h.svc.Profile(r.Context(), adminID)
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "Admin not found")
			return
		}
		slog.ErrorContext(r.Context(), "get admin profile", "admin_id", adminID, "err", err)
		response.InternalError(w, "Server error")
		return
	}

	response.OK(w, p)
}
