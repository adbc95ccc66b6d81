// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	DefaultHost                 = "0.0.0.0"
	DefaultPort                 = 8080
	DefaultLogLevel             = "INFO"
	DefaultSourceBaseURL        = "https://api.notion.com"
	DefaultSourceVersion        = "2022-06-28"
	DefaultSourcePageSize       = 100
	DefaultSourceTimeout        = 30 * time.Second
	DefaultSourceMaxRetries     = 3
	DefaultSourceInitialDelay   = 500 * time.Millisecond
	DefaultSourceBackoffFactor  = 2.0
	DefaultRelationAttempts     = 4 // initial lookup + 3 retries
	DefaultRelationInitialDelay = 100 * time.Millisecond
	DefaultRelationBackoff      = 2.0
	DefaultIdentityHeader       = "X-Auth-User"
	DefaultAssetIconBucket      = "homedash-asset-icons"
	DefaultPlaceIconBucket      = "homedash-place-icons"
)

// LogFormat mirrors log.Format without importing internal/log.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// SourceConfig configures the external property-database service client.
type SourceConfig struct {
	baseURL       string
	token         string
	version       string
	pageSize      int
	timeout       time.Duration
	maxRetries    int
	initialDelay  time.Duration
	backoffFactor float64
}

// NewSourceConfig creates a SourceConfig with defaults.
func NewSourceConfig() SourceConfig {
	return SourceConfig{
		baseURL:       DefaultSourceBaseURL,
		version:       DefaultSourceVersion,
		pageSize:      DefaultSourcePageSize,
		timeout:       DefaultSourceTimeout,
		maxRetries:    DefaultSourceMaxRetries,
		initialDelay:  DefaultSourceInitialDelay,
		backoffFactor: DefaultSourceBackoffFactor,
	}
}

// BaseURL returns the API base URL.
func (c SourceConfig) BaseURL() string { return c.baseURL }

// Token returns the integration credential.
func (c SourceConfig) Token() string { return c.token }

// Version returns the API version header value.
func (c SourceConfig) Version() string { return c.version }

// PageSize returns the query page size.
func (c SourceConfig) PageSize() int { return c.pageSize }

// Timeout returns the per-request timeout.
func (c SourceConfig) Timeout() time.Duration { return c.timeout }

// MaxRetries returns the transient-failure retry budget.
func (c SourceConfig) MaxRetries() int { return c.maxRetries }

// InitialDelay returns the first retry delay.
func (c SourceConfig) InitialDelay() time.Duration { return c.initialDelay }

// BackoffFactor returns the retry backoff multiplier.
func (c SourceConfig) BackoffFactor() float64 { return c.backoffFactor }

// WithToken returns a copy with the credential set.
func (c SourceConfig) WithToken(token string) SourceConfig {
	c.token = token
	return c
}

// WithBaseURL returns a copy with the base URL set.
func (c SourceConfig) WithBaseURL(url string) SourceConfig {
	c.baseURL = url
	return c
}

// BlobConfig configures object storage for mirrored icons.
type BlobConfig struct {
	endpoint        string
	accessKey       string
	secretKey       string
	useSSL          bool
	publicBaseURL   string
	assetIconBucket string
	placeIconBucket string
}

// NewBlobConfig creates a BlobConfig with default bucket names.
func NewBlobConfig() BlobConfig {
	return BlobConfig{
		assetIconBucket: DefaultAssetIconBucket,
		placeIconBucket: DefaultPlaceIconBucket,
	}
}

// Endpoint returns the object-storage endpoint (host:port).
func (c BlobConfig) Endpoint() string { return c.endpoint }

// AccessKey returns the access key id.
func (c BlobConfig) AccessKey() string { return c.accessKey }

// SecretKey returns the secret access key.
func (c BlobConfig) SecretKey() string { return c.secretKey }

// UseSSL reports whether to connect over TLS.
func (c BlobConfig) UseSSL() bool { return c.useSSL }

// PublicBaseURL returns the base URL public object URLs are derived from.
// Empty means derive from the endpoint.
func (c BlobConfig) PublicBaseURL() string { return c.publicBaseURL }

// AssetIconBucket returns the bucket for asset icons.
func (c BlobConfig) AssetIconBucket() string { return c.assetIconBucket }

// PlaceIconBucket returns the bucket for place icons.
func (c BlobConfig) PlaceIconBucket() string { return c.placeIconBucket }

// Configured reports whether object storage is usable.
func (c BlobConfig) Configured() bool { return c.endpoint != "" }

// RelationRetryConfig tunes the relation resolver's bounded retry.
type RelationRetryConfig struct {
	attempts      int
	initialDelay  time.Duration
	backoffFactor float64
}

// NewRelationRetryConfig creates a RelationRetryConfig with defaults:
// an initial lookup plus three retries at 100/200/400 ms.
func NewRelationRetryConfig() RelationRetryConfig {
	return RelationRetryConfig{
		attempts:      DefaultRelationAttempts,
		initialDelay:  DefaultRelationInitialDelay,
		backoffFactor: DefaultRelationBackoff,
	}
}

// NewRelationRetryConfigWith creates a RelationRetryConfig with explicit
// tuning.
func NewRelationRetryConfigWith(attempts int, initialDelay time.Duration, backoffFactor float64) RelationRetryConfig {
	return RelationRetryConfig{
		attempts:      attempts,
		initialDelay:  initialDelay,
		backoffFactor: backoffFactor,
	}
}

// Attempts returns the total lookup attempts per id form.
func (c RelationRetryConfig) Attempts() int { return c.attempts }

// InitialDelay returns the first backoff delay.
func (c RelationRetryConfig) InitialDelay() time.Duration { return c.initialDelay }

// BackoffFactor returns the backoff multiplier.
func (c RelationRetryConfig) BackoffFactor() float64 { return c.backoffFactor }

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	host           string
	port           int
	dataDir        string
	dbURL          string
	logLevel       string
	logFormat      LogFormat
	source         SourceConfig
	blob           BlobConfig
	relationRetry  RelationRetryConfig
	syncSecrets    []string
	identityHeader string
	mappingsFile   string
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".homedash"
	}
	return filepath.Join(home, ".homedash")
}

// PrepareDataDir creates the data directory if missing and returns it.
func PrepareDataDir(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dataDir, nil
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		host:           DefaultHost,
		port:           DefaultPort,
		dataDir:        dataDir,
		dbURL:          "sqlite:///" + filepath.Join(dataDir, "homedash.db"),
		logLevel:       DefaultLogLevel,
		logFormat:      LogFormatPretty,
		source:         NewSourceConfig(),
		blob:           NewBlobConfig(),
		relationRetry:  NewRelationRetryConfig(),
		identityHeader: DefaultIdentityHeader,
	}
}

// WithHost returns a copy with the server host set.
func (c AppConfig) WithHost(host string) AppConfig {
	c.host = host
	return c
}

// WithPort returns a copy with the server port set.
func (c AppConfig) WithPort(port int) AppConfig {
	c.port = port
	return c
}

// Host returns the server host.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port listen address.
func (c AppConfig) Addr() string { return fmt.Sprintf("%s:%d", c.host, c.port) }

// DataDir returns the data directory.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log verbosity.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Source returns the property-database source configuration.
func (c AppConfig) Source() SourceConfig { return c.source }

// Blob returns the object-storage configuration.
func (c AppConfig) Blob() BlobConfig { return c.blob }

// RelationRetry returns the relation resolver retry tuning.
func (c AppConfig) RelationRetry() RelationRetryConfig { return c.relationRetry }

// SyncSecrets returns the accepted webhook shared secrets.
func (c AppConfig) SyncSecrets() []string { return c.syncSecrets }

// IdentityHeader returns the trusted identity header name.
func (c AppConfig) IdentityHeader() string { return c.identityHeader }

// MappingsFile returns the optional semantic-mapping override file path.
func (c AppConfig) MappingsFile() string { return c.mappingsFile }
