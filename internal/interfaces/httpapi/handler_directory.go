package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/scoutbook/scoutbook/internal/usecase"
)

const maxDirectoryLimit = 200

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.directoryService.ListPlayers(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerProfileDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerProfileToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListScouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScouts")
	defer span.End()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	listings, err := h.directoryService.ListScouts(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list scouts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scoutListingDTO, 0, len(listings))
	for _, listing := range listings {
		items = append(items, scoutListingToDTO(ctx, listing))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return maxDirectoryLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput)
	}
	if limit > maxDirectoryLimit {
		limit = maxDirectoryLimit
	}

	return limit, nil
}
