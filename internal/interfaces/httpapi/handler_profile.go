package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
	"github.com/scoutbook/scoutbook/internal/domain/user"
	"github.com/scoutbook/scoutbook/internal/usecase"
)

func (h *Handler) GetMyPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyPlayerProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	if principal.Role != user.RolePlayer {
		writeError(ctx, w, fmt.Errorf("%w: player profile requires the player role", usecase.ErrUnauthorized))
		return
	}

	record, err := h.playerProfiles.Load(ctx, principal.UserID, true)
	if err != nil {
		h.logger.WarnContext(ctx, "load player profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerProfileToDTO(ctx, record))
}

func (h *Handler) SaveMyPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMyPlayerProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	if principal.Role != user.RolePlayer {
		writeError(ctx, w, fmt.Errorf("%w: player profile requires the player role", usecase.ErrUnauthorized))
		return
	}

	var req savePlayerProfileRequest
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

	committed, err := h.playerProfiles.Commit(ctx, principal.UserID, usecase.CommitProfileInput[profile.PlayerProfile]{
		Draft: req.toDomain(principal.UserID),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "commit player profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerProfileToDTO(ctx, committed))
}

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	record, err := h.playerProfiles.Load(ctx, userID, false)
	if err != nil {
		h.logger.WarnContext(ctx, "load player profile failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerProfileToDTO(ctx, record))
}

func (h *Handler) GetMyScoutProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyScoutProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	if principal.Role != user.RoleScout {
		writeError(ctx, w, fmt.Errorf("%w: scout profile requires the scout role", usecase.ErrUnauthorized))
		return
	}

	record, err := h.scoutProfiles.Load(ctx, principal.UserID, true)
	if err != nil {
		h.logger.WarnContext(ctx, "load scout profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoutProfileToDTO(ctx, record))
}

func (h *Handler) SaveMyScoutProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMyScoutProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	if principal.Role != user.RoleScout {
		writeError(ctx, w, fmt.Errorf("%w: scout profile requires the scout role", usecase.ErrUnauthorized))
		return
	}

	var req saveScoutProfileRequest
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

	committed, err := h.scoutProfiles.Commit(ctx, principal.UserID, usecase.CommitProfileInput[profile.ScoutProfile]{
		Draft: req.toDomain(principal.UserID),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "commit scout profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoutProfileToDTO(ctx, committed))
}

func (h *Handler) GetScoutProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoutProfile")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	record, err := h.scoutProfiles.Load(ctx, userID, false)
	if err != nil {
		h.logger.WarnContext(ctx, "load scout profile failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoutProfileToDTO(ctx, record))
}
