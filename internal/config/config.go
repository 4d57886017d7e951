package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Meilisearch
		Auth
		Tasks
		Scheduler
		Source
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Path string
	}

	Meilisearch struct {
		URL    string
		APIKey string
		Index  string
	}

	Auth struct {
		JWTSecret   string
		TokenExpiry time.Duration
		BcryptCost  int
	}

	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}

	Scheduler struct {
		ReindexEnabled  bool
		ReindexSchedule string // Cron format: "0 3 * * *" = daily at 03:00
	}

	// Source points at the upstream hadith collection CDN used by the
	// import-data command.
	Source struct {
		BaseURL string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Meilisearch defaults
	v.SetDefault("meilisearch_url", "http://localhost:7700")
	v.SetDefault("meilisearch_api_key", "")
	v.SetDefault("meilisearch_index", DefaultSearchIndex)

	// Auth defaults
	v.SetDefault("jwt_secret_key", "")
	v.SetDefault("jwt_token_expiry", "168h") // 7 days
	v.SetDefault("auth_bcrypt_cost", 12)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "10m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	// Scheduled reindex defaults
	v.SetDefault("reindex_enabled", false)
	v.SetDefault("reindex_schedule", "0 3 * * *")

	// Hadith data source
	v.SetDefault("hadith_api_base_url", DefaultSourceBaseURL)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Meilisearch: Meilisearch{
			URL:    v.GetString("MEILISEARCH_URL"),
			APIKey: v.GetString("MEILISEARCH_API_KEY"),
			Index:  v.GetString("MEILISEARCH_INDEX"),
		},
		Auth: Auth{
			JWTSecret:   v.GetString("JWT_SECRET_KEY"),
			TokenExpiry: v.GetDuration("JWT_TOKEN_EXPIRY"),
			BcryptCost:  v.GetInt("AUTH_BCRYPT_COST"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Scheduler: Scheduler{
			ReindexEnabled:  v.GetBool("REINDEX_ENABLED"),
			ReindexSchedule: v.GetString("REINDEX_SCHEDULE"),
		},
		Source: Source{
			BaseURL: v.GetString("HADITH_API_BASE_URL"),
		},
	}
}
