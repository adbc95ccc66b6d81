package homedash

import (
	"log/slog"

	"github.com/nightowl-labs/homedash/domain/service"
	"github.com/nightowl-labs/homedash/internal/config"
)

// clientConfig holds configuration for Client construction.
// Use newClientConfig() to create with defaults from internal/config.
type clientConfig struct {
	dbURL          string
	dataDir        string
	source         config.SourceConfig
	blob           config.BlobConfig
	relationRetry  config.RelationRetryConfig
	syncSecrets    []string
	identityHeader string
	mappingsFile   string
	verifier       service.IdentityVerifier
	sourceClient   service.Source
	logger         *slog.Logger
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	app := config.NewAppConfig()
	return &clientConfig{
		dbURL:          app.DBURL(),
		dataDir:        app.DataDir(),
		source:         app.Source(),
		blob:           app.Blob(),
		relationRetry:  app.RelationRetry(),
		identityHeader: app.IdentityHeader(),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = "sqlite:///" + path
	}
}

// WithPostgres configures PostgreSQL as the database.
func WithPostgres(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithDatabaseURL configures the database from a connection URL
// (sqlite:/// or postgres://).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithDataDir sets the data directory.
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.dataDir = dir
	}
}

// WithSource configures the external property-database source.
func WithSource(source config.SourceConfig) Option {
	return func(c *clientConfig) {
		c.source = source
	}
}

// WithSourceToken sets the source credential, keeping the default endpoint.
func WithSourceToken(token string) Option {
	return func(c *clientConfig) {
		c.source = c.source.WithToken(token)
	}
}

// WithSourceClient replaces the source client entirely. It takes
// precedence over WithSource and WithSourceToken.
func WithSourceClient(source service.Source) Option {
	return func(c *clientConfig) {
		c.sourceClient = source
	}
}

// WithBlobStorage configures object storage for mirrored icons.
func WithBlobStorage(blob config.BlobConfig) Option {
	return func(c *clientConfig) {
		c.blob = blob
	}
}

// WithSyncSecrets sets the shared secrets accepted on the webhook path.
func WithSyncSecrets(secrets ...string) Option {
	return func(c *clientConfig) {
		c.syncSecrets = secrets
	}
}

// WithIdentityHeader sets the trusted identity header name.
func WithIdentityHeader(name string) Option {
	return func(c *clientConfig) {
		c.identityHeader = name
	}
}

// WithIdentityVerifier plugs in the external authentication collaborator.
func WithIdentityVerifier(verifier service.IdentityVerifier) Option {
	return func(c *clientConfig) {
		c.verifier = verifier
	}
}

// WithRelationRetry tunes the relation resolver's retry budget.
func WithRelationRetry(cfg config.RelationRetryConfig) Option {
	return func(c *clientConfig) {
		c.relationRetry = cfg
	}
}

// WithMappingsFile sets the semantic-mapping override file path.
func WithMappingsFile(path string) Option {
	return func(c *clientConfig) {
		c.mappingsFile = path
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
