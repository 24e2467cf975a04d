package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"advisorpilot/internal/analyses"
	"advisorpilot/internal/automation"
	"advisorpilot/internal/catalog"
	"advisorpilot/internal/insights"
	"advisorpilot/internal/leads"
	"advisorpilot/internal/llm"
	openai "advisorpilot/internal/llm/openai"
	"advisorpilot/internal/roi"
	"advisorpilot/internal/services/health"
	"advisorpilot/internal/shared/auth"
	"advisorpilot/internal/shared/cache"
	"advisorpilot/internal/shared/config"
	"advisorpilot/internal/shared/notify"
	"advisorpilot/internal/shared/server"
	"advisorpilot/internal/shared/server/middleware"
	"advisorpilot/internal/shared/storage/db"
	"advisorpilot/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Redis             *cache.Redis
	Catalog           *catalog.Store
	LLM               llm.Client
	LeadsRepo         leads.Repo
	AnalysesService   *analyses.Service
	InsightsService   *insights.Service
	LeadsService      *leads.Service
	Detector          *automation.Detector
	Signer            *auth.Signer
	Health            *health.Service
	AnalysisHandler   *analyses.Handler
	ROIHandler        *roi.Handler
	AutomationHandler *automation.Handler
	InsightsHandler   *insights.Handler
	LeadsHandler      *leads.Handler
}

// Options let callers and tests replace infrastructure.
type Options struct {
	// LLM overrides the model client built from config.
	LLM llm.Client
	// Mailer and Publisher override the AWS notifiers built from config.
	Mailer    leads.Mailer
	Publisher leads.Publisher
}

// Build prepares dependencies and the router.
func Build(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	log := telemetry.NewZapAdapter(telemetry.L())

	store, err := catalog.LoadFiles(cfg.IndustryDataPath, cfg.IntegrationDataPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Redis:   buildRedis(ctx, cfg),
		Catalog: store,
		Health:  health.NewService(),
	}

	app.LLM, err = buildLLM(cfg, app.Redis, opts.LLM, log)
	if err != nil {
		return nil, err
	}

	mailer, publisher := opts.Mailer, opts.Publisher
	if mailer == nil && publisher == nil {
		mailer, publisher = buildNotifiers(ctx, cfg)
	}

	if app.DB != nil {
		app.LeadsRepo = &leads.PGRepo{DB: app.DB}
	} else {
		app.LeadsRepo = leads.NewMemoryRepo()
	}

	app.InsightsService = insights.NewService(app.LLM, store, log.With(map[string]any{"component": "insights"}))
	app.AnalysesService = analyses.NewService(store, app.InsightsService, log.With(map[string]any{"component": "analyses"}))
	app.LeadsService = leads.NewService(app.LeadsRepo, mailer, publisher, log.With(map[string]any{"component": "leads"}))
	app.Detector = automation.NewDetector(store, nil)

	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService)
	app.ROIHandler = roi.NewHandler()
	app.AutomationHandler = automation.NewHandler(app.Detector)
	app.InsightsHandler = insights.NewHandler(app.InsightsService)
	app.LeadsHandler = leads.NewHandler(app.LeadsService)
	app.Signer = auth.NewSigner(cfg.AdminJWTSecret)
	if cfg.LeadReadsOpen() {
		telemetry.Warn("bootstrap: ADMIN_JWT_SECRET empty; lead reads are unauthenticated", nil)
	} else {
		app.LeadsHandler.ReadGuard = middleware.RequireRole(app.Signer, auth.RoleAdmin)
	}

	app.registerHealth()

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		Health:            app.Health,
		AnalysisHandler:   app.AnalysisHandler,
		ROIHandler:        app.ROIHandler,
		AutomationHandler: app.AutomationHandler,
		InsightsHandler:   app.InsightsHandler,
		LeadsHandler:      app.LeadsHandler,
		RateLimiter:       middleware.NewRateLimiter(nil),
	})

	return app, nil
}

// Close releases pooled connections.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

func (a *App) registerHealth() {
	if a.DB != nil {
		sqlDB := a.DB
		a.Health.Register("db", func(ctx context.Context) error {
			return db.Ping(ctx, sqlDB, 0)
		})
	} else {
		a.Health.Register("db", nil)
	}
	if a.Redis != nil {
		a.Health.Register("redis", a.Redis.Ping)
	} else {
		a.Health.Register("redis", nil)
	}
	if a.Config.LLMEnabled() {
		a.Health.WithLLM("openai")
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.IsDevLike() {
			telemetry.Info("bootstrap: DATABASE_URL empty; using in-memory repositories", nil)
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap: database connect failed; using in-memory repositories", map[string]any{"error": err})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

// buildRedis returns nil when Redis is not configured or unreachable; the
// LLM cache is optional.
func buildRedis(ctx context.Context, cfg config.Config) *cache.Redis {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := cache.NewRedis(cache.RedisConfig{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx); err != nil {
		telemetry.Warn("bootstrap: redis unavailable; LLM cache disabled", map[string]any{"error": err, "addr": cfg.RedisAddr})
		_ = rdb.Close()
		return nil
	}
	return rdb
}

func buildLLM(cfg config.Config, rdb *cache.Redis, override llm.Client, log telemetry.Logger) (llm.Client, error) {
	client := override
	if client == nil {
		if !cfg.LLMEnabled() {
			telemetry.Info("bootstrap: OPENAI_API_KEY empty; insights use fallbacks", nil)
			client = llm.PlaceholderClient{}
		} else {
			oc, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, openai.Options{
				BaseURL: cfg.OpenAIBaseURL,
				Timeout: cfg.LLMTimeout,
				Logger:  log.With(map[string]any{"component": "openai"}),
			})
			if err != nil {
				return nil, err
			}
			client = oc
		}
	}
	if rdb != nil && cfg.LLMCacheTTL > 0 {
		client = llm.NewCachedClient(client, rdb, cfg.LLMCacheTTL, log.With(map[string]any{"component": "llm_cache"}))
	}
	return client, nil
}

// buildNotifiers returns AWS-backed notifiers for whichever channels are
// configured. Unconfigured channels are nil and skipped by the leads service.
func buildNotifiers(ctx context.Context, cfg config.Config) (leads.Mailer, leads.Publisher) {
	wantMail := cfg.SESFromEmail != "" && len(cfg.SalesEmails) > 0
	wantAlert := cfg.LeadsTopicARN != ""
	if !wantMail && !wantAlert {
		return nil, nil
	}
	awsCfg, err := notify.LoadAWS(ctx, cfg.AWSRegion)
	if err != nil {
		telemetry.Warn("bootstrap: AWS config unavailable; lead notifications disabled", map[string]any{"error": err})
		return nil, nil
	}
	var mailer leads.Mailer
	var publisher leads.Publisher
	if wantMail {
		mailer = notify.NewSESMailer(awsCfg, cfg.SESFromEmail, cfg.SalesEmails)
	}
	if wantAlert {
		publisher = notify.NewSNSPublisher(awsCfg, cfg.LeadsTopicARN)
	}
	return mailer, publisher
}
