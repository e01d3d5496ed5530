package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/siphore/huddle-api/internal/config"
	httptransport "github.com/siphore/huddle-api/internal/http"
	"github.com/siphore/huddle-api/internal/http/handler"
	httpmiddleware "github.com/siphore/huddle-api/internal/http/middleware"
	"github.com/siphore/huddle-api/internal/media"
	apimiddleware "github.com/siphore/huddle-api/internal/middleware"
	"github.com/siphore/huddle-api/internal/repository"
	"github.com/siphore/huddle-api/internal/server"
	"github.com/siphore/huddle-api/internal/service"
	"github.com/siphore/huddle-api/internal/telemetry"
	"github.com/siphore/huddle-api/internal/token"
)

func main() {
	app := fx.New(
		fx.Provide(
			newConfig,
			newLogger,
			newTelemetry,
			newSnowflake,
			newPGXPool,
			newUserRepository,
			newTokenRepository,
			newEventRepository,
			newArticleRepository,
			newPodcastRepository,
			newOpportunityRepository,
			newOrganizerRepository,
			newMediaHost,
			newTokenSigner,
			newRateLimiter,
			service.NewAuthService,
			service.NewEventService,
			service.NewArticleService,
			service.NewPodcastService,
			service.NewOpportunityService,
			service.NewOrganizerService,
			newUserHandler,
			newEventHandler,
			newArticleHandler,
			newPodcastHandler,
			newOpportunityHandler,
			newOrganizerHandler,
			newHandlers,
			newAuthMiddleware,
			httptransport.NewRouter,
			server.NewHTTPServer,
		),
		fx.Invoke(useTelemetry, runMigrations, startHTTPServer),
	)

	app.Run()
}

func newConfig() (config.Config, error) {
	return config.Load()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Environment == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func newTelemetry(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*telemetry.Provider, error) {
	provider, err := telemetry.New(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry init: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return provider.Shutdown(stopCtx)
		},
	})

	return provider, nil
}

func newSnowflake() (*snowflake.Node, error) {
	node, err := snowflake.NewNode(1)
	return node, err
}

func newPGXPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

func newUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return repository.NewPostgresUserRepo(pool)
}

func newTokenRepository(pool *pgxpool.Pool) repository.TokenRepository {
	return repository.NewPostgresTokenRepo(pool)
}

func newEventRepository(pool *pgxpool.Pool) repository.EventRepository {
	return repository.NewPostgresEventRepo(pool)
}

func newArticleRepository(pool *pgxpool.Pool) repository.ArticleRepository {
	return repository.NewPostgresArticleRepo(pool)
}

func newPodcastRepository(pool *pgxpool.Pool) repository.PodcastRepository {
	return repository.NewPostgresPodcastRepo(pool)
}

func newOpportunityRepository(pool *pgxpool.Pool) repository.OpportunityRepository {
	return repository.NewPostgresOpportunityRepo(pool)
}

func newOrganizerRepository(pool *pgxpool.Pool) repository.OrganizerRepository {
	return repository.NewPostgresOrganizerRepo(pool)
}

func newMediaHost(cfg config.Config) (media.Host, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return media.NewClient(ctx, media.Config{
		Endpoint:  cfg.MediaEndpoint,
		Region:    cfg.MediaRegion,
		Bucket:    cfg.MediaBucket,
		AccessKey: cfg.MediaAccessKey,
		SecretKey: cfg.MediaSecretKey,
		BaseURL:   cfg.MediaBaseURL,
	})
}

func newTokenSigner(cfg config.Config) *token.Signer {
	return token.NewSigner(cfg.AuthSecret, cfg.TokenTTL)
}

func newRateLimiter(cfg config.Config) *apimiddleware.RateLimiter {
	return apimiddleware.NewRateLimiter(cfg.RateLimitRPM)
}

func newUserHandler(auth *service.AuthService, cfg config.Config) *handler.UserHandler {
	return handler.NewUserHandler(auth, cfg.Environment)
}

func newEventHandler(events *service.EventService, cfg config.Config) *handler.EventHandler {
	return handler.NewEventHandler(events, cfg.Environment)
}

func newArticleHandler(articles *service.ArticleService, cfg config.Config) *handler.ArticleHandler {
	return handler.NewArticleHandler(articles, cfg.Environment)
}

func newPodcastHandler(podcasts *service.PodcastService, cfg config.Config) *handler.PodcastHandler {
	return handler.NewPodcastHandler(podcasts, cfg.Environment)
}

func newOpportunityHandler(opportunities *service.OpportunityService, cfg config.Config) *handler.OpportunityHandler {
	return handler.NewOpportunityHandler(opportunities, cfg.Environment)
}

func newOrganizerHandler(organizers *service.OrganizerService, cfg config.Config) *handler.OrganizerHandler {
	return handler.NewOrganizerHandler(organizers, cfg.Environment)
}

func newHandlers(
	users *handler.UserHandler,
	events *handler.EventHandler,
	articles *handler.ArticleHandler,
	podcasts *handler.PodcastHandler,
	opportunities *handler.OpportunityHandler,
	organizers *handler.OrganizerHandler,
) httptransport.Handlers {
	return httptransport.Handlers{
		Users:         users,
		Events:        events,
		Articles:      articles,
		Podcasts:      podcasts,
		Opportunities: opportunities,
		Organizers:    organizers,
	}
}

func newAuthMiddleware(authService *service.AuthService) *httpmiddleware.Auth {
	return &httpmiddleware.Auth{Service: authService}
}

func runMigrations(cfg config.Config, logger *zap.Logger) error {
	if err := repository.Migrate(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("database schema up to date")
	return nil
}

func startHTTPServer(lc fx.Lifecycle, srv *server.HTTPServer, cfg config.Config, logger *zap.Logger) {
	addr := ":" + cfg.HTTPPort
	var (
		cancel context.CancelFunc
		done   chan struct{}
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			runCtx, stop := context.WithCancel(context.Background())
			cancel = stop
			done = make(chan struct{})

			go func() {
				if err := srv.Run(runCtx, addr); err != nil {
					logger.Error("http server stopped", zap.Error(err))
				}
				close(done)
			}()

			logger.Info("http server listening", zap.String("addr", addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}
			if done == nil {
				return nil
			}
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

func useTelemetry(*telemetry.Provider) {}
