// Package homedash mirrors personal finance databases from an external
// property-database service into a local relational store.
//
// It syncs three linked databases per user: assets, places, and
// investments. Each sync fetches the remote schema and records, decodes
// the user-defined properties into typed rows, resolves cross-database
// references, mirrors icons into object storage, and removes local rows
// whose source records have disappeared.
//
// Basic usage:
//
//	client, err := homedash.New(
//	    homedash.WithSQLite(".homedash/data.db"),
//	    homedash.WithSourceToken(os.Getenv("NOTION_TOKEN")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	run, err := client.Sync.SyncAll(ctx, ownerID, syncrun.TriggerCLI)
package homedash

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nightowl-labs/homedash/application/service"
	"github.com/nightowl-labs/homedash/domain/record"
	domainservice "github.com/nightowl-labs/homedash/domain/service"
	"github.com/nightowl-labs/homedash/infrastructure/auth"
	"github.com/nightowl-labs/homedash/infrastructure/blob"
	"github.com/nightowl-labs/homedash/infrastructure/notion"
	"github.com/nightowl-labs/homedash/infrastructure/persistence"
	"github.com/nightowl-labs/homedash/internal/config"
	"github.com/nightowl-labs/homedash/internal/database"
	"github.com/nightowl-labs/homedash/internal/log"
)

// Client is the main entry point for the homedash library.
//
// Access resources via struct fields:
//
//	client.Sync.SyncAll(ctx, ownerID, syncrun.TriggerAPI)
//	client.Holdings.Assets(ctx, ownerID)
type Client struct {
	// Public resource fields (direct service access)
	Sync     *service.Sync
	Holdings *service.Holdings

	db     database.Database
	source domainservice.Source
	blobs  *blob.MinioStore

	verifier       domainservice.IdentityVerifier
	syncSecrets    []string
	identityHeader string

	logger *slog.Logger
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = log.New("INFO", log.FormatPretty).Slog()
	}

	if _, err := config.PrepareDataDir(cfg.dataDir); err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	ctx := context.Background()

	db, err := database.NewDatabase(ctx, cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	assetStore := persistence.NewAssetStore(db)
	placeStore := persistence.NewPlaceStore(db)
	investmentStore := persistence.NewInvestmentStore(db)
	linkStore := persistence.NewLinkStore(db)
	runStore := persistence.NewSyncRunStore(db)

	source := cfg.sourceClient
	if source == nil {
		source = notion.NewClientFromConfig(cfg.source)
	}

	// Icon mirroring is optional: without object storage, syncs still run
	// and icon urls are simply left as they are.
	var blobs *blob.MinioStore
	var mirror *service.IconMirror
	var buckets service.IconBuckets
	if cfg.blob.Configured() {
		blobs, err = blob.NewMinioStore(cfg.blob)
		if err != nil {
			errClose := db.Close()
			return nil, errors.Join(fmt.Errorf("blob storage: %w", err), errClose)
		}
		if err := blobs.EnsureBuckets(ctx, cfg.blob.AssetIconBucket(), cfg.blob.PlaceIconBucket()); err != nil {
			logger.Warn("icon buckets unavailable, mirroring disabled", slog.String("error", err.Error()))
		} else {
			mirror = service.NewIconMirror(blobs, logger)
			buckets = service.IconBuckets{
				Asset: cfg.blob.AssetIconBucket(),
				Place: cfg.blob.PlaceIconBucket(),
			}
		}
	}

	mapping, err := loadMapping(cfg.mappingsFile)
	if err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("load mappings: %w", err), errClose)
	}

	resolver := service.NewRelationResolver(cfg.relationRetry, assetStore, placeStore, logger)

	verifier := cfg.verifier
	if verifier == nil {
		verifier = auth.NewHeaderVerifier()
	}

	return &Client{
		Sync: service.NewSync(
			source,
			assetStore,
			placeStore,
			investmentStore,
			linkStore,
			runStore,
			resolver,
			mirror,
			mapping,
			buckets,
			logger,
		),
		Holdings:       service.NewHoldings(assetStore, placeStore, investmentStore, linkStore, runStore),
		db:             db,
		source:         source,
		blobs:          blobs,
		verifier:       verifier,
		syncSecrets:    cfg.syncSecrets,
		identityHeader: cfg.identityHeader,
		logger:         logger,
	}, nil
}

// NewFromConfig creates a Client from application configuration.
func NewFromConfig(cfg config.AppConfig, logger *slog.Logger) (*Client, error) {
	return New(
		WithDataDir(cfg.DataDir()),
		WithDatabaseURL(cfg.DBURL()),
		WithSource(cfg.Source()),
		WithBlobStorage(cfg.Blob()),
		WithRelationRetry(cfg.RelationRetry()),
		WithSyncSecrets(cfg.SyncSecrets()...),
		WithIdentityHeader(cfg.IdentityHeader()),
		WithMappingsFile(cfg.MappingsFile()),
		WithLogger(logger),
	)
}

func loadMapping(path string) (record.Mapping, error) {
	if path == "" {
		return record.DefaultMapping(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return record.Mapping{}, fmt.Errorf("read %s: %w", path, err)
	}
	return record.ParseMappingYAML(data)
}

// Close releases the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger { return c.logger }

// Verifier returns the identity verifier for interactive requests.
func (c *Client) Verifier() domainservice.IdentityVerifier { return c.verifier }

// SyncSecrets returns the shared secrets accepted on the webhook path.
func (c *Client) SyncSecrets() []string { return c.syncSecrets }

// IdentityHeader returns the trusted identity header name.
func (c *Client) IdentityHeader() string { return c.identityHeader }
