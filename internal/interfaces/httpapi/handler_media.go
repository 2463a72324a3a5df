package httpapi

import (
	"fmt"
	"net/http"

	"github.com/scoutbook/scoutbook/internal/domain/media"
	"github.com/scoutbook/scoutbook/internal/domain/user"
	"github.com/scoutbook/scoutbook/internal/usecase"
)

const maxUploadBytes = 64 << 20

// UploadAvatar replaces the caller's profile photo. The stored key is fixed
// per user, so the avatar URL stays stable across replacements.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadAvatar")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	purpose := media.PurposeAvatar
	if principal.Role == user.RoleScout {
		purpose = media.PurposeScoutAvatar
	}

	h.uploadProfileAsset(w, r, principal.UserID, purpose)
}

// UploadCover replaces a scout's cover photo.
func (h *Handler) UploadCover(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadCover")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	if principal.Role != user.RoleScout {
		writeError(ctx, w, fmt.Errorf("%w: cover photos require the scout role", usecase.ErrUnauthorized))
		return
	}

	h.uploadProfileAsset(w, r, principal.UserID, media.PurposeScoutCover)
}

func (h *Handler) uploadProfileAsset(w http.ResponseWriter, r *http.Request, userID string, purpose media.Purpose) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.uploadProfileAsset")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: multipart field %q is required: %v", usecase.ErrInvalidInput, "file", err))
		return
	}
	defer file.Close()

	url, err := h.mediaService.UploadProfileAsset(ctx, userID, purpose, header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.WarnContext(ctx, "profile asset upload failed", "user_id", userID, "purpose", string(purpose), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mediaUploadDTO{URL: url})
}

// UploadVideo stores a highlight video under a fresh timestamped key.
func (h *Handler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadVideo")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	if principal.Role != user.RolePlayer {
		writeError(ctx, w, fmt.Errorf("%w: highlight videos require the player role", usecase.ErrUnauthorized))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: multipart field %q is required: %v", usecase.ErrInvalidInput, "file", err))
		return
	}
	defer file.Close()

	url, err := h.mediaService.UploadVideo(ctx, principal.UserID, header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.WarnContext(ctx, "video upload failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mediaUploadDTO{URL: url})
}
