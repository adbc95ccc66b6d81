// Package service orchestrates sync runs: fetching external datasets,
// decoding and resolving records, reconciling the target store, and
// mirroring icons.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/domain/record"
	domainservice "github.com/nightowl-labs/homedash/domain/service"
	"github.com/nightowl-labs/homedash/domain/syncrun"
)

// ErrMissingLink indicates the owner has no external database linked for
// the requested sync.
var ErrMissingLink = errors.New("no external database linked")

// IconBuckets names the object-storage buckets per icon-bearing kind.
type IconBuckets struct {
	Asset string
	Place string
}

// Sync runs the per-kind reconciliation machines in dependency order.
//
// Each kind's machine is schema fetch → full fetch → decode and resolve →
// reconcile (upsert plus delete of removed rows, one transaction) → mirror
// icons. Kinds run strictly sequentially
// because investment relation resolution depends on asset and place rows
// already being committed. A failing kind yields a failed result entry and
// the next kind still runs.
type Sync struct {
	source      domainservice.Source
	assets      holding.AssetStore
	places      holding.PlaceStore
	investments holding.InvestmentStore
	links       holding.LinkStore
	runs        syncrun.Store
	resolver    *RelationResolver
	mirror      *IconMirror
	mapping     record.Mapping
	buckets     IconBuckets
	logger      *slog.Logger
}

// NewSync creates a Sync. mirror may be nil when object storage is not
// configured; icon mirroring is then skipped.
func NewSync(
	source domainservice.Source,
	assets holding.AssetStore,
	places holding.PlaceStore,
	investments holding.InvestmentStore,
	links holding.LinkStore,
	runs syncrun.Store,
	resolver *RelationResolver,
	mirror *IconMirror,
	mapping record.Mapping,
	buckets IconBuckets,
	logger *slog.Logger,
) *Sync {
	return &Sync{
		source:      source,
		assets:      assets,
		places:      places,
		investments: investments,
		links:       links,
		runs:        runs,
		resolver:    resolver,
		mirror:      mirror,
		mapping:     mapping,
		buckets:     buckets,
		logger:      logger,
	}
}

// SyncAll syncs every kind the owner has linked, in dependency order.
// It fails with ErrMissingLink when the owner has no links at all.
func (s *Sync) SyncAll(ctx context.Context, ownerID string, trigger syncrun.Trigger) (syncrun.Run, error) {
	links, err := s.links.Find(ctx, holding.WithOwner(ownerID))
	if err != nil {
		return syncrun.Run{}, err
	}

	linked := make(map[holding.Kind]string, len(links))
	for _, link := range links {
		linked[link.Kind()] = link.DatabaseID()
	}
	if len(linked) == 0 {
		return syncrun.Run{}, ErrMissingLink
	}

	var kinds []holding.Kind
	for _, kind := range holding.SyncOrder() {
		if _, ok := linked[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return s.run(ctx, ownerID, kinds, linked, trigger), nil
}

// SyncKind syncs a single explicitly keyed kind.
func (s *Sync) SyncKind(ctx context.Context, ownerID string, kind holding.Kind, trigger syncrun.Trigger) (syncrun.Run, error) {
	link, err := s.links.FindOne(ctx, holding.WithOwner(ownerID), holding.WithKind(kind))
	if err != nil {
		return syncrun.Run{}, ErrMissingLink
	}

	linked := map[holding.Kind]string{kind: link.DatabaseID()}
	return s.run(ctx, ownerID, []holding.Kind{kind}, linked, trigger), nil
}

func (s *Sync) run(ctx context.Context, ownerID string, kinds []holding.Kind, linked map[holding.Kind]string, trigger syncrun.Trigger) syncrun.Run {
	started := time.Now().UTC()
	results := syncrun.Result{}

	for _, kind := range kinds {
		result := s.syncEntity(ctx, ownerID, kind, linked[kind])
		results[kind] = result

		if result.Success() {
			s.logger.Info("entity synced",
				slog.String("owner", ownerID),
				slog.String("kind", kind.String()),
				slog.Int("added", result.Added()),
				slog.Int("removed", result.Removed()),
				slog.Int("total", result.Total()),
			)
		} else {
			s.logger.Error("entity sync failed",
				slog.String("owner", ownerID),
				slog.String("kind", kind.String()),
				slog.String("error", result.Err()),
			)
		}
	}

	run := syncrun.NewRun(uuid.NewString(), ownerID, trigger, results, started, time.Now().UTC())
	if _, err := s.runs.Save(ctx, run); err != nil {
		s.logger.Warn("sync run not recorded", slog.String("error", err.Error()))
	}
	return run
}

// syncEntity runs one kind's machine end to end. Any error before the
// reconciliation commits is fatal to this kind only; icon mirroring
// degrades softly.
func (s *Sync) syncEntity(ctx context.Context, ownerID string, kind holding.Kind, databaseID string) syncrun.EntityResult {
	schema, err := s.source.DatabaseSchema(ctx, databaseID)
	if err != nil {
		return syncrun.Failed(err.Error())
	}

	records, err := s.source.QueryDatabase(ctx, databaseID)
	if err != nil {
		return syncrun.Failed(err.Error())
	}

	switch kind {
	case holding.KindAsset:
		return s.syncAssets(ctx, ownerID, databaseID, schema, records)
	case holding.KindPlace:
		return s.syncPlaces(ctx, ownerID, databaseID, schema, records)
	case holding.KindInvestment:
		return s.syncInvestments(ctx, ownerID, databaseID, schema, records)
	default:
		return syncrun.Failed("unknown entity kind " + kind.String())
	}
}

func (s *Sync) syncAssets(ctx context.Context, ownerID, databaseID string, schema record.Schema, records []record.Record) syncrun.EntityResult {
	storedIDs, err := s.assets.ExternalIDs(ctx, ownerID, databaseID)
	if err != nil {
		return syncrun.Failed(err.Error())
	}
	diff := record.Compare(records, storedIDs)

	now := time.Now().UTC()
	assets := make([]holding.Asset, len(records))
	for i, rec := range records {
		assets[i] = buildAsset(ownerID, databaseID, rec, schema, s.mapping, now)
	}

	saved, err := s.assets.Reconcile(ctx, ownerID, databaseID, assets, diff.Removed())
	if err != nil {
		return syncrun.Failed(err.Error())
	}

	targets := make([]iconTarget, 0, len(saved))
	for i, rec := range records {
		if rec.Icon().IsImage() {
			targets = append(targets, iconTarget{id: saved[i].ID(), rec: rec})
		}
	}
	s.mirrorIcons(ctx, holding.KindAsset, ownerID, targets, s.assets.SetIconURL)

	return syncrun.Succeeded(diff.AddedCount(), diff.RemovedCount(), len(records))
}

func (s *Sync) syncPlaces(ctx context.Context, ownerID, databaseID string, schema record.Schema, records []record.Record) syncrun.EntityResult {
	storedIDs, err := s.places.ExternalIDs(ctx, ownerID, databaseID)
	if err != nil {
		return syncrun.Failed(err.Error())
	}
	diff := record.Compare(records, storedIDs)

	now := time.Now().UTC()
	places := make([]holding.Place, len(records))
	for i, rec := range records {
		places[i] = buildPlace(ownerID, databaseID, rec, schema, s.mapping, now)
	}

	saved, err := s.places.Reconcile(ctx, ownerID, databaseID, places, diff.Removed())
	if err != nil {
		return syncrun.Failed(err.Error())
	}

	targets := make([]iconTarget, 0, len(saved))
	for i, rec := range records {
		if rec.Icon().IsImage() {
			targets = append(targets, iconTarget{id: saved[i].ID(), rec: rec})
		}
	}
	s.mirrorIcons(ctx, holding.KindPlace, ownerID, targets, s.places.SetIconURL)

	return syncrun.Succeeded(diff.AddedCount(), diff.RemovedCount(), len(records))
}

func (s *Sync) syncInvestments(ctx context.Context, ownerID, databaseID string, schema record.Schema, records []record.Record) syncrun.EntityResult {
	storedIDs, err := s.investments.ExternalIDs(ctx, ownerID, databaseID)
	if err != nil {
		return syncrun.Failed(err.Error())
	}
	diff := record.Compare(records, storedIDs)

	now := time.Now().UTC()
	investments := make([]holding.Investment, len(records))
	for i, rec := range records {
		inv := buildInvestment(ownerID, databaseID, rec, schema, s.mapping, now)
		if ref := relationRef(rec, s.mapping, record.FieldAssetRef); ref != "" {
			if id := s.resolver.ResolveAsset(ctx, ownerID, ref); id != nil {
				inv = inv.WithAssetID(*id)
			}
		}
		if ref := relationRef(rec, s.mapping, record.FieldPlaceRef); ref != "" {
			if id := s.resolver.ResolvePlace(ctx, ownerID, ref); id != nil {
				inv = inv.WithPlaceID(*id)
			}
		}
		investments[i] = inv
	}

	if _, err := s.investments.Reconcile(ctx, ownerID, databaseID, investments, diff.Removed()); err != nil {
		return syncrun.Failed(err.Error())
	}

	return syncrun.Succeeded(diff.AddedCount(), diff.RemovedCount(), len(records))
}

type iconTarget struct {
	id  int64
	rec record.Record
}

func (s *Sync) mirrorIcons(ctx context.Context, kind holding.Kind, ownerID string, targets []iconTarget, setIconURL func(context.Context, int64, string) error) {
	bucket := s.bucketFor(kind)
	if s.mirror == nil || !kind.HasIcon() || bucket == "" {
		return
	}
	for _, t := range targets {
		url, err := s.mirror.Mirror(ctx, bucket, ownerID, t.id, t.rec.Icon().URL(), t.rec.LastEditedAt())
		if err != nil {
			s.logger.Warn("icon mirror failed",
				slog.String("owner", ownerID),
				slog.Int64("id", t.id),
				slog.String("error", err.Error()),
			)
			continue
		}
		if err := setIconURL(ctx, t.id, url); err != nil {
			s.logger.Warn("icon url not stored",
				slog.Int64("id", t.id),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *Sync) bucketFor(kind holding.Kind) string {
	switch kind {
	case holding.KindAsset:
		return s.buckets.Asset
	case holding.KindPlace:
		return s.buckets.Place
	default:
		return ""
	}
}
