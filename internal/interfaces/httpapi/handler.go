package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
	"github.com/scoutbook/scoutbook/internal/platform/logging"
	"github.com/scoutbook/scoutbook/internal/usecase"
)

type Handler struct {
	playerProfiles    *usecase.ProfileService[profile.PlayerProfile]
	scoutProfiles     *usecase.ProfileService[profile.ScoutProfile]
	experienceService *usecase.ExperienceService
	mediaService      *usecase.MediaService
	directoryService  *usecase.DirectoryService
	sweepService      *usecase.MediaSweepService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	playerProfiles *usecase.ProfileService[profile.PlayerProfile],
	scoutProfiles *usecase.ProfileService[profile.ScoutProfile],
	experienceService *usecase.ExperienceService,
	mediaService *usecase.MediaService,
	directoryService *usecase.DirectoryService,
	sweepService *usecase.MediaSweepService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerProfiles:    playerProfiles,
		scoutProfiles:     scoutProfiles,
		experienceService: experienceService,
		mediaService:      mediaService,
		directoryService:  directoryService,
		sweepService:      sweepService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
