package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// API access and admin sessions
	APIKey           string        // optional shared API key; empty = open API
	AdminTokenSecret string        // HMAC secret for admin session tokens
	AdminTokenTTL    time.Duration // admin session validity (default: 12h)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	// Volunteer notifications (both are silent no-ops when unconfigured)
	NotificationEmail string // destination address for application emails
	ResendAPIKey      string // Resend API credential
	ResendEndpoint    string // override for tests
	SheetsAPIKey      string // Google Sheets API key
	SpreadsheetID     string // target spreadsheet
	SheetsBaseURL     string // override for tests
	SheetName         string // sheet tab receiving appended rows

	// Ministry unit catalog (optional; empty = unit validation disabled)
	MinistryFile   string        // path to the ministries.yaml file
	ReloadInterval time.Duration // interval to reload ministries.yaml (default: 24h)

	// Index repair sweeper
	RepairInterval time.Duration // interval between index/record reconciliation sweeps

	// Media storage (optional; empty bucket = asset cleanup disabled)
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	// Abuse protection on public write endpoints
	RateLimitBurst  int  // token bucket size per client IP
	RateLimitPerMin int  // refill rate per client IP
	TrustProxy      bool // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("STEEPLE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("STEEPLE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("STEEPLE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("STEEPLE_PRETTY_LOG", true),

		// API access and admin sessions
		APIKey:           getenv("STEEPLE_API_KEY", ""),
		AdminTokenSecret: requireEnv("STEEPLE_ADMIN_TOKEN_SECRET"),
		AdminTokenTTL:    mustDuration("STEEPLE_ADMIN_TOKEN_TTL", 12*time.Hour),

		// Redis settings
		RedisAddr:             requireEnv("STEEPLE_REDIS_ADDR"),
		RedisUser:             getenv("STEEPLE_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("STEEPLE_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("STEEPLE_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("STEEPLE_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Volunteer notifications
		NotificationEmail: getenv("STEEPLE_NOTIFICATION_EMAIL", ""),
		ResendAPIKey:      getenv("STEEPLE_RESEND_API_KEY", ""),
		ResendEndpoint:    getenv("STEEPLE_RESEND_ENDPOINT", "https://api.resend.com/emails"),
		SheetsAPIKey:      getenv("STEEPLE_SHEETS_API_KEY", ""),
		SpreadsheetID:     getenv("STEEPLE_SPREADSHEET_ID", ""),
		SheetsBaseURL:     getenv("STEEPLE_SHEETS_BASE_URL", "https://sheets.googleapis.com"),
		SheetName:         getenv("STEEPLE_SHEET_NAME", "Volunteer Applications"),

		// Ministry catalog
		MinistryFile:   getenv("STEEPLE_MINISTRY_FILE", ""),
		ReloadInterval: mustDuration("STEEPLE_RELOAD_SOURCE_INTERVAL", 24*time.Hour),

		// Index repair
		RepairInterval: mustDuration("STEEPLE_REPAIR_INTERVAL", time.Hour),

		// Media storage
		S3Bucket:    getenv("STEEPLE_S3_BUCKET", ""),
		S3Region:    getenv("STEEPLE_S3_REGION", "us-east-1"),
		S3Endpoint:  getenv("STEEPLE_S3_ENDPOINT", ""),
		S3AccessKey: getenv("STEEPLE_S3_ACCESS_KEY", ""),
		S3SecretKey: getenv("STEEPLE_S3_SECRET_KEY", ""),

		// Abuse protection
		RateLimitBurst:  getenvInt("STEEPLE_RATE_LIMIT_BURST", 5),
		RateLimitPerMin: getenvInt("STEEPLE_RATE_LIMIT_PER_MIN", 10),
		TrustProxy:      mustBool("STEEPLE_TRUST_PROXY", true),
	}

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("FATAL: STEEPLE_REDIS_PASSWORD is required when STEEPLE_REDIS_PASSWORD_REQUIRED=true")
	}

	if len(cfg.AdminTokenSecret) < 16 {
		panic("FATAL: STEEPLE_ADMIN_TOKEN_SECRET must be at least 16 characters")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		cfgCopy.AdminTokenSecret = "***REDACTED***"
		cfgCopy.ResendAPIKey = "***REDACTED***"
		cfgCopy.SheetsAPIKey = "***REDACTED***"
		cfgCopy.S3SecretKey = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
