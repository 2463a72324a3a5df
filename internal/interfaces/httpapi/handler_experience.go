package httpapi

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/scoutbook/scoutbook/internal/domain/user"
	"github.com/scoutbook/scoutbook/internal/usecase"
)

func (h *Handler) GetMyExperiences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyExperiences")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	if principal.Role != user.RoleScout {
		writeError(ctx, w, fmt.Errorf("%w: experiences require the scout role", usecase.ErrUnauthorized))
		return
	}

	entries, err := h.experienceService.Load(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "load experiences failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, experiencesToDTO(ctx, entries))
}

// SaveMyExperiences replaces the caller's whole experience list with the
// submitted one. Entries that keep their id are updated, missing entries are
// removed, and id-less entries are inserted, all in submission order.
func (h *Handler) SaveMyExperiences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMyExperiences")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	if principal.Role != user.RoleScout {
		writeError(ctx, w, fmt.Errorf("%w: experiences require the scout role", usecase.ErrUnauthorized))
		return
	}

	var req saveExperiencesRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	committed, err := h.experienceService.Commit(ctx, principal.UserID, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "commit experiences failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, experiencesToDTO(ctx, committed))
}
