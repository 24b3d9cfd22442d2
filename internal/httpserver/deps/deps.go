package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ugmchurch/steeple/internal/auth"
	"github.com/ugmchurch/steeple/internal/content"
	"github.com/ugmchurch/steeple/internal/logger"
	"github.com/ugmchurch/steeple/internal/ministry"
	"github.com/ugmchurch/steeple/internal/notify"
	redisstore "github.com/ugmchurch/steeple/internal/store/redis"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	RedisClient *redis.Client // Redis client connection

	// Content repositories
	Sermons   *redisstore.Repository[content.Sermon, *content.Sermon]
	Resources *redisstore.Repository[content.Resource, *content.Resource]
	Events    *redisstore.Repository[content.Event, *content.Event]

	// Singletons
	HomepageEvent *redisstore.Singleton[content.HomepageEvent]
	LiveStream    *redisstore.Singleton[content.LiveStreamSettings]

	// Volunteer pipeline
	Volunteers *redisstore.VolunteerStore
	Notifier   *notify.Dispatcher
	Catalog    *ministry.Catalog

	// Admin access
	Credential *redisstore.CredentialStore
	Sessions   *auth.Sessions
	APIKey     string // optional shared API key; empty = open API

	ReloadTrigger chan struct{} // Channel to trigger manual catalog reload (nil if catalog disabled)

	// Abuse protection on public write endpoints
	TrustProxy      bool
	RateLimitBurst  int
	RateLimitPerMin int
}
