package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/scoutbook/scoutbook/internal/config"
	"github.com/scoutbook/scoutbook/internal/domain/experience"
	"github.com/scoutbook/scoutbook/internal/domain/media"
	"github.com/scoutbook/scoutbook/internal/domain/profile"
	"github.com/scoutbook/scoutbook/internal/domain/user"
	"github.com/scoutbook/scoutbook/internal/infrastructure/account/introspect"
	cacherepo "github.com/scoutbook/scoutbook/internal/infrastructure/repository/cache"
	repomemory "github.com/scoutbook/scoutbook/internal/infrastructure/repository/memory"
	"github.com/scoutbook/scoutbook/internal/infrastructure/repository/postgres"
	storagememory "github.com/scoutbook/scoutbook/internal/infrastructure/storage/memory"
	storages3 "github.com/scoutbook/scoutbook/internal/infrastructure/storage/s3"
	"github.com/scoutbook/scoutbook/internal/interfaces/httpapi"
	basecache "github.com/scoutbook/scoutbook/internal/platform/cache"
	idgen "github.com/scoutbook/scoutbook/internal/platform/id"
	"github.com/scoutbook/scoutbook/internal/platform/resilience"
	"github.com/scoutbook/scoutbook/internal/usecase"
)

const memoryStoreBaseURL = "http://localhost:8080/media"

// NewHTTPServer wires repositories, services, and the HTTP router. The
// returned cleanup releases the database handle and auth session observers;
// call it after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*http.Server, func(context.Context) error, error) {
	var (
		db      *sqlx.DB
		players profile.Repository[profile.PlayerProfile]
		scouts  profile.Repository[profile.ScoutProfile]
		exps    experience.Repository
	)

	if cfg.DBURL != "" {
		dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
		var err error
		db, err = otelsqlx.ConnectContext(ctx, "postgres", dbURL,
			otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}

		players = postgres.NewPlayerProfileRepository(db)
		scouts = postgres.NewScoutProfileRepository(db)
		exps = postgres.NewExperienceRepository(db)
	} else {
		logger.Warn("DB_URL is empty, falling back to in-memory repositories")
		players = repomemory.NewPlayerProfileRepository()
		scouts = repomemory.NewScoutProfileRepository()
		exps = repomemory.NewExperienceRepository()
	}

	if cfg.CacheEnabled {
		cacheStore := basecache.NewStore(cfg.CacheTTL)
		players = cacherepo.NewProfileRepository(players, cacheStore, "player")
		scouts = cacherepo.NewProfileRepository(scouts, cacheStore, "scout")
	}

	var store media.Store
	mediaBaseURL := cfg.MediaPublicBaseURL
	if cfg.S3Bucket != "" {
		s3Store, err := storages3.NewStore(ctx, storages3.Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.MediaPublicBaseURL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("build s3 store: %w", err)
		}
		store = s3Store
	} else {
		logger.Warn("S3_BUCKET is empty, falling back to in-memory media store")
		store = storagememory.NewStore(memoryStoreBaseURL)
		mediaBaseURL = memoryStoreBaseURL
	}

	playerProfiles, err := usecase.NewProfileService(profile.PlayerVariant(), players, store, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build player profile service: %w", err)
	}
	scoutProfiles, err := usecase.NewProfileService(profile.ScoutVariant(), scouts, store, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build scout profile service: %w", err)
	}
	experienceService, err := usecase.NewExperienceService(exps, idgen.NewRandomGenerator(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build experience service: %w", err)
	}
	mediaService, err := usecase.NewMediaService(store, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build media service: %w", err)
	}
	directoryService, err := usecase.NewDirectoryService(players, scouts, exps, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build directory service: %w", err)
	}
	sweepService, err := usecase.NewMediaSweepService(players, scouts, store, mediaBaseURL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build media sweep service: %w", err)
	}

	verifier, err := introspect.NewClient(introspect.Config{
		BaseURL:        cfg.IdentityBaseURL,
		IntrospectPath: cfg.IdentityIntrospectPath,
		Timeout:        cfg.IdentityTimeout,
		CacheTTL:       cfg.IdentityCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.IdentityCircuitEnabled,
			FailureThreshold: cfg.IdentityCircuitFailureCount,
			OpenTimeout:      cfg.IdentityCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.IdentityCircuitHalfOpenMaxReq,
		},
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build identity client: %w", err)
	}

	sessions := user.NewSessions()
	unsubscribe := sessions.Subscribe(func(p user.Principal) {
		logger.Debug("authenticated request", "user_id", p.UserID, "role", string(p.Role))
	})

	handler := httpapi.NewHandler(
		playerProfiles,
		scoutProfiles,
		experienceService,
		mediaService,
		directoryService,
		sweepService,
		nil,
	)
	router := httpapi.NewRouter(
		handler,
		verifier,
		sessions,
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		cfg.InternalJobToken,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func(context.Context) error {
		unsubscribe()
		sessions.Clear()
		if db != nil {
			return db.Close()
		}
		return nil
	}

	return server, cleanup, nil
}
