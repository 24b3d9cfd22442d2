package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ugmchurch/steeple/internal/auth"
	"github.com/ugmchurch/steeple/internal/blob"
	"github.com/ugmchurch/steeple/internal/config"
	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/httpserver"
	"github.com/ugmchurch/steeple/internal/httpserver/deps"
	"github.com/ugmchurch/steeple/internal/logger"
	"github.com/ugmchurch/steeple/internal/ministry"
	"github.com/ugmchurch/steeple/internal/notify"
	"github.com/ugmchurch/steeple/internal/redis"
	"github.com/ugmchurch/steeple/internal/scheduler"
	redisstore "github.com/ugmchurch/steeple/internal/store/redis"
	"github.com/ugmchurch/steeple/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	notifier    *notify.Dispatcher
	reloader    *scheduler.MinistryReloader
	repairer    *scheduler.IndexRepairer
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	store := redisstore.NewStore(redisClient)

	// Best-effort media cleanup on record deletes (disabled without a bucket)
	remover, err := blob.NewRemover(context.Background(), blob.Options{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		loggerClient.Errorf("Failed to configure media storage: %v", err)
		os.Exit(1)
	}
	var blobs redisstore.AssetRemover
	if remover != nil {
		blobs = remover
		loggerClient.Info("media cleanup enabled", logger.String("bucket", cfg.S3Bucket))
	}

	// Content repositories, each with its own listing order
	sermons := redisstore.NewRepository(store, redisstore.RepositoryConfig[content.Sermon, *content.Sermon]{
		Kind:  redisstore.KindSermon,
		Less:  func(a, b *content.Sermon) bool { return content.CompareDates(a.Date, b.Date) > 0 },
		Asset: func(s *content.Sermon) string { return s.VideoURL },
		Blobs: blobs,
		Log:   loggerClient,
	})
	resources := redisstore.NewRepository(store, redisstore.RepositoryConfig[content.Resource, *content.Resource]{
		Kind:  redisstore.KindResource,
		Less:  func(a, b *content.Resource) bool { return a.CreatedAt > b.CreatedAt },
		Asset: func(res *content.Resource) string { return res.FileURL },
		Blobs: blobs,
		Log:   loggerClient,
	})
	events := redisstore.NewRepository(store, redisstore.RepositoryConfig[content.Event, *content.Event]{
		Kind: redisstore.KindEvent,
		Less: func(a, b *content.Event) bool { return content.CompareDates(a.Date, b.Date) < 0 },
		Log:  loggerClient,
	})

	homepageEvent := redisstore.NewSingleton(store, redisstore.KeyHomepageEvent, content.DefaultHomepageEvent)
	liveStream := redisstore.NewSingleton(store, redisstore.KeyLiveStream, content.DefaultLiveStreamSettings)
	volunteers := redisstore.NewVolunteerStore(store, loggerClient, nil, nil)
	credential := redisstore.NewCredentialStore(store)
	sessions := auth.NewSessions([]byte(cfg.AdminTokenSecret), cfg.AdminTokenTTL, nil)

	// Volunteer notification fan-out (sinks no-op until configured)
	httpClient := &http.Client{Timeout: 15 * time.Second}
	notifier := notify.NewDispatcher(loggerClient,
		notify.NewEmailSink(httpClient, cfg.ResendEndpoint, cfg.ResendAPIKey, cfg.NotificationEmail),
		notify.NewSheetsSink(httpClient, cfg.SheetsBaseURL, cfg.SheetsAPIKey, cfg.SpreadsheetID, cfg.SheetName),
	)

	// Ministry unit catalog (if a file is configured)
	catalog := ministry.NewCatalog()
	var reloader *scheduler.MinistryReloader
	var reloadTrigger chan struct{}
	if cfg.MinistryFile != "" {
		loggerClient.Info("ministry file configured, initializing catalog reloader",
			logger.String("file", cfg.MinistryFile))
		reloadTrigger = make(chan struct{}, 1)
		reloader = scheduler.NewMinistryReloader(
			cfg.MinistryFile,
			catalog,
			loggerClient,
			cfg.ReloadInterval,
			reloadTrigger,
		)
	} else {
		loggerClient.Info("ministry file not configured, unit validation disabled")
	}

	// Index repair sweeper
	repairer := scheduler.NewIndexRepairer(store, loggerClient, cfg.RepairInterval)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		RedisClient:     redisClient,
		Sermons:         sermons,
		Resources:       resources,
		Events:          events,
		HomepageEvent:   homepageEvent,
		LiveStream:      liveStream,
		Volunteers:      volunteers,
		Notifier:        notifier,
		Catalog:         catalog,
		Credential:      credential,
		Sessions:        sessions,
		APIKey:          cfg.APIKey,
		ReloadTrigger:   reloadTrigger,
		TrustProxy:      cfg.TrustProxy,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		notifier:    notifier,
		reloader:    reloader,
		repairer:    repairer,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Steeple v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Steeple %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start ministry catalog reloader (if enabled)
	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start ministry reloader: %w", err)
		}
		a.logger.Info("ministry reloader started",
			logger.Duration("interval", a.cfg.ReloadInterval))
	}

	// Start index repair sweeper
	if err := a.repairer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start index repairer: %w", err)
	}
	a.logger.Info("index repairer started",
		logger.Duration("interval", a.cfg.RepairInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.reloader != nil {
		a.reloader.Stop()
	}
	a.repairer.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Let in-flight notification deliveries finish before dropping connections
	a.notifier.Wait()

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Steeple stopped cleanly")
	return nil
}
