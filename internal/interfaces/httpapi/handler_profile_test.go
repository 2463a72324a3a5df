package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
	"github.com/scoutbook/scoutbook/internal/domain/user"
	repomemory "github.com/scoutbook/scoutbook/internal/infrastructure/repository/memory"
	storagememory "github.com/scoutbook/scoutbook/internal/infrastructure/storage/memory"
	"github.com/scoutbook/scoutbook/internal/platform/id"
	"github.com/scoutbook/scoutbook/internal/platform/logging"
	"github.com/scoutbook/scoutbook/internal/usecase"
)

type staticVerifier struct {
	principals map[string]user.Principal
}

func (v *staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	p, ok := v.principals[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return p, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	playerRepo := repomemory.NewPlayerProfileRepository()
	scoutRepo := repomemory.NewScoutProfileRepository()
	expRepo := repomemory.NewExperienceRepository()
	store := storagememory.NewStore("https://cdn.example.com/media")

	playerProfiles, err := usecase.NewProfileService(profile.PlayerVariant(), playerRepo, store, discard)
	if err != nil {
		t.Fatalf("new player profile service: %v", err)
	}
	scoutProfiles, err := usecase.NewProfileService(profile.ScoutVariant(), scoutRepo, store, discard)
	if err != nil {
		t.Fatalf("new scout profile service: %v", err)
	}
	experienceService, err := usecase.NewExperienceService(expRepo, id.NewRandomGenerator(), discard)
	if err != nil {
		t.Fatalf("new experience service: %v", err)
	}
	mediaService, err := usecase.NewMediaService(store, discard)
	if err != nil {
		t.Fatalf("new media service: %v", err)
	}
	directoryService, err := usecase.NewDirectoryService(playerRepo, scoutRepo, expRepo, discard)
	if err != nil {
		t.Fatalf("new directory service: %v", err)
	}
	sweepService, err := usecase.NewMediaSweepService(playerRepo, scoutRepo, store, "https://cdn.example.com/media", discard)
	if err != nil {
		t.Fatalf("new media sweep service: %v", err)
	}

	handler := NewHandler(playerProfiles, scoutProfiles, experienceService, mediaService, directoryService, sweepService, logging.NewNop())
	verifier := &staticVerifier{principals: map[string]user.Principal{
		"player-token": {UserID: "user-1", Email: "p@example.com", Role: user.RolePlayer},
		"scout-token":  {UserID: "scout-1", Email: "s@example.com", Role: user.RoleScout},
	}}

	return NewRouter(handler, verifier, user.NewSessions(), discard, false, nil, "job-token")
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestGetMyPlayerProfile_CreatesOnFirstLoad(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/player/me", nil)
	req.Header.Set("Authorization", "Bearer player-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	if got, _ := data["userId"].(string); got != "user-1" {
		t.Fatalf("expected userId user-1, got %v", data["userId"])
	}
}

func TestGetPlayerProfile_UnknownUserNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/player/ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSaveMyPlayerProfile_RoundTrip(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"firstName":"Lionel","position":"Forward","preferredFoot":"left","speed":88}`
	req := httptest.NewRequest(http.MethodPut, "/v1/profiles/player/me", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer player-token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	getReq := httptest.NewRequest(http.MethodGet, "/v1/profiles/player/user-1", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)

	if getRec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", getRec.Code, getRec.Body.String())
	}
	data, _ := decodeEnvelope(t, getRec)["data"].(map[string]any)
	if got, _ := data["firstName"].(string); got != "Lionel" {
		t.Fatalf("expected firstName Lionel, got %v", data["firstName"])
	}
	if got, _ := data["speed"].(float64); got != 88 {
		t.Fatalf("expected speed 88, got %v", data["speed"])
	}
}

func TestSaveMyPlayerProfile_RejectsScoutRole(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/v1/profiles/player/me", strings.NewReader(`{"name":"X"}`))
	req.Header.Set("Authorization", "Bearer scout-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSaveMyPlayerProfile_RejectsUnknownField(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/v1/profiles/player/me", strings.NewReader(`{"nickname":"X"}`))
	req.Header.Set("Authorization", "Bearer player-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/player/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", rec.Code, rec.Body.String())
	}
}
