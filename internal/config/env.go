package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig captures configuration from environment variables.
type EnvConfig struct {
	Host     string `envconfig:"HOST"`
	Port     int    `envconfig:"PORT"`
	DataDir  string `envconfig:"DATA_DIR"`
	DBURL    string `envconfig:"DB_URL"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	LogFmt   string `envconfig:"LOG_FORMAT"`

	SourceToken         string        `envconfig:"NOTION_TOKEN"`
	SourceBaseURL       string        `envconfig:"NOTION_BASE_URL"`
	SourceVersion       string        `envconfig:"NOTION_VERSION"`
	SourceTimeout       time.Duration `envconfig:"NOTION_TIMEOUT"`
	SourceMaxRetries    int           `envconfig:"NOTION_MAX_RETRIES"`

	RelationAttempts     int           `envconfig:"RELATION_RETRY_ATTEMPTS"`
	RelationInitialDelay time.Duration `envconfig:"RELATION_RETRY_INITIAL_DELAY"`
	RelationBackoff      float64       `envconfig:"RELATION_RETRY_BACKOFF_FACTOR"`

	SyncSecrets    []string `envconfig:"SYNC_SECRETS"`
	IdentityHeader string   `envconfig:"IDENTITY_HEADER"`
	MappingsFile   string   `envconfig:"MAPPINGS_FILE"`

	BlobEndpoint        string `envconfig:"BLOB_ENDPOINT"`
	BlobAccessKey       string `envconfig:"BLOB_ACCESS_KEY"`
	BlobSecretKey       string `envconfig:"BLOB_SECRET_KEY"`
	BlobUseSSL          bool   `envconfig:"BLOB_USE_SSL"`
	BlobPublicBaseURL   string `envconfig:"BLOB_PUBLIC_BASE_URL"`
	BlobAssetIconBucket string `envconfig:"BLOB_ASSET_ICON_BUCKET"`
	BlobPlaceIconBucket string `envconfig:"BLOB_PLACE_ICON_BUCKET"`
}

// LoadFromEnv populates an EnvConfig from the process environment.
func LoadFromEnv() (*EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}

// Normalize trims whitespace from string fields and secret entries.
func (e *EnvConfig) Normalize() *EnvConfig {
	e.Host = strings.TrimSpace(e.Host)
	e.DataDir = strings.TrimSpace(e.DataDir)
	e.DBURL = strings.TrimSpace(e.DBURL)
	e.SourceToken = strings.TrimSpace(e.SourceToken)
	e.SourceBaseURL = strings.TrimSpace(e.SourceBaseURL)
	e.BlobEndpoint = strings.TrimSpace(e.BlobEndpoint)
	e.BlobPublicBaseURL = strings.TrimSpace(e.BlobPublicBaseURL)
	secrets := make([]string, 0, len(e.SyncSecrets))
	for _, s := range e.SyncSecrets {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	e.SyncSecrets = secrets
	return e
}

// ToAppConfig layers the environment values over the defaults.
func (e *EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()
	if e.Host != "" {
		cfg.host = e.Host
	}
	if e.Port != 0 {
		cfg.port = e.Port
	}
	if e.DataDir != "" {
		cfg.dataDir = e.DataDir
		cfg.dbURL = "sqlite:///" + filepath.Join(e.DataDir, "homedash.db")
	}
	if e.DBURL != "" {
		cfg.dbURL = e.DBURL
	}
	if e.LogLevel != "" {
		cfg.logLevel = e.LogLevel
	}
	if e.LogFmt != "" {
		cfg.logFormat = LogFormat(strings.ToLower(e.LogFmt))
	}

	cfg.source.token = e.SourceToken
	if e.SourceBaseURL != "" {
		cfg.source.baseURL = e.SourceBaseURL
	}
	if e.SourceVersion != "" {
		cfg.source.version = e.SourceVersion
	}
	if e.SourceTimeout > 0 {
		cfg.source.timeout = e.SourceTimeout
	}
	if e.SourceMaxRetries > 0 {
		cfg.source.maxRetries = e.SourceMaxRetries
	}

	if e.RelationAttempts > 0 {
		cfg.relationRetry.attempts = e.RelationAttempts
	}
	if e.RelationInitialDelay > 0 {
		cfg.relationRetry.initialDelay = e.RelationInitialDelay
	}
	if e.RelationBackoff > 0 {
		cfg.relationRetry.backoffFactor = e.RelationBackoff
	}

	cfg.syncSecrets = e.SyncSecrets
	if e.IdentityHeader != "" {
		cfg.identityHeader = e.IdentityHeader
	}
	cfg.mappingsFile = e.MappingsFile

	cfg.blob.endpoint = e.BlobEndpoint
	cfg.blob.accessKey = e.BlobAccessKey
	cfg.blob.secretKey = e.BlobSecretKey
	cfg.blob.useSSL = e.BlobUseSSL
	cfg.blob.publicBaseURL = e.BlobPublicBaseURL
	if e.BlobAssetIconBucket != "" {
		cfg.blob.assetIconBucket = e.BlobAssetIconBucket
	}
	if e.BlobPlaceIconBucket != "" {
		cfg.blob.placeIconBucket = e.BlobPlaceIconBucket
	}

	return cfg
}
