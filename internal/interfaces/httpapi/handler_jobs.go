package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/scoutbook/scoutbook/internal/usecase"
)

// RunMediaSweepJob deletes stored objects that no profile references. An
// empty body runs a full sweep with default workers.
func (h *Handler) RunMediaSweepJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunMediaSweepJob")
	defer span.End()

	var req mediaSweepRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.sweepService.Run(ctx, usecase.MediaSweepInput{
		DryRun:  req.DryRun,
		Workers: req.Workers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "media sweep job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mediaSweepToDTO(result))
}
