package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/scouts", handler.ListScouts)
	mux.HandleFunc("GET /v1/profiles/player/{userID}", handler.GetPlayerProfile)
	mux.HandleFunc("GET /v1/profiles/scout/{userID}", handler.GetScoutProfile)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, notifier AuthNotifier) {
	requireAuth := func(next http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, notifier, next)
	}

	mux.Handle("GET /v1/profiles/player/me", requireAuth(handler.GetMyPlayerProfile))
	mux.Handle("PUT /v1/profiles/player/me", requireAuth(handler.SaveMyPlayerProfile))
	mux.Handle("GET /v1/profiles/scout/me", requireAuth(handler.GetMyScoutProfile))
	mux.Handle("PUT /v1/profiles/scout/me", requireAuth(handler.SaveMyScoutProfile))
	mux.Handle("GET /v1/profiles/scout/me/experiences", requireAuth(handler.GetMyExperiences))
	mux.Handle("PUT /v1/profiles/scout/me/experiences", requireAuth(handler.SaveMyExperiences))
	mux.Handle("POST /v1/media/avatar", requireAuth(handler.UploadAvatar))
	mux.Handle("POST /v1/media/cover", requireAuth(handler.UploadCover))
	mux.Handle("POST /v1/media/video", requireAuth(handler.UploadVideo))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/media-sweep", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunMediaSweepJob)))
}
