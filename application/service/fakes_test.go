package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/nightowl-labs/homedash/domain/record"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSource serves canned schemas and record sets per database id.
type fakeSource struct {
	mu        sync.Mutex
	schemas   map[string]record.Schema
	records   map[string][]record.Record
	schemaErr map[string]error
	queryErr  map[string]error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		schemas:   map[string]record.Schema{},
		records:   map[string][]record.Record{},
		schemaErr: map[string]error{},
		queryErr:  map[string]error{},
	}
}

func (f *fakeSource) setDatabase(databaseID string, schema record.Schema, records []record.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.schemas[databaseID] = schema
	f.records[databaseID] = records
}

func (f *fakeSource) DatabaseSchema(_ context.Context, databaseID string) (record.Schema, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.schemaErr[databaseID]; err != nil {
		return nil, err
	}
	schema, ok := f.schemas[databaseID]
	if !ok {
		return nil, fmt.Errorf("unknown database %s", databaseID)
	}
	return schema, nil
}

func (f *fakeSource) QueryDatabase(_ context.Context, databaseID string) ([]record.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.queryErr[databaseID]; err != nil {
		return nil, err
	}
	records, ok := f.records[databaseID]
	if !ok {
		return nil, fmt.Errorf("unknown database %s", databaseID)
	}
	return records, nil
}

// fakeBlobStore keeps uploaded objects in memory.
type fakeBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeBlobStore) Upload(_ context.Context, bucket, key, contentType string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[bucket+"/"+key] = data
	f.types[bucket+"/"+key] = contentType
	return nil
}

func (f *fakeBlobStore) PublicURL(bucket, key string) string {
	return "https://cdn.test/" + bucket + "/" + key
}

// Record construction helpers.

func titleProperty(text string) record.Property {
	return record.Property{Type: record.TypeTitle, Title: []record.RichText{{PlainText: text}}}
}

func textProperty(text string) record.Property {
	return record.Property{Type: record.TypeRichText, RichText: []record.RichText{{PlainText: text}}}
}

func numberProperty(n float64) record.Property {
	return record.Property{Type: record.TypeNumber, Number: &n}
}

func relationProperty(ids ...string) record.Property {
	rels := make([]record.Relation, len(ids))
	for i, id := range ids {
		rels[i] = record.Relation{ID: id}
	}
	return record.Property{Type: record.TypeRelation, Relation: rels}
}

func assetRecord(id, name, ticker string, price float64) record.Record {
	return record.New(id, map[string]record.Property{
		"Name":   titleProperty(name),
		"Ticker": textProperty(ticker),
		"Price":  numberProperty(price),
	}, record.Icon{}, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
}

func assetSchema() record.Schema {
	return record.Schema{
		"Name":   record.NewSchemaEntry(record.TypeTitle, "Name"),
		"Ticker": record.NewSchemaEntry(record.TypeRichText, "Ticker"),
		"Price":  record.NewSchemaEntry(record.TypeNumber, "Price"),
	}
}

func investmentSchema() record.Schema {
	return record.Schema{
		"Name":     record.NewSchemaEntry(record.TypeTitle, "Name"),
		"Quantity": record.NewSchemaEntry(record.TypeNumber, "Quantity"),
		"Asset":    record.NewSchemaEntry(record.TypeRelation, "Asset"),
		"Place":    record.NewSchemaEntry(record.TypeRelation, "Place"),
	}
}

func investmentRecord(id, name string, quantity float64, assetRef, placeRef string) record.Record {
	props := map[string]record.Property{
		"Name":     titleProperty(name),
		"Quantity": numberProperty(quantity),
	}
	if assetRef != "" {
		props["Asset"] = relationProperty(assetRef)
	}
	if placeRef != "" {
		props["Place"] = relationProperty(placeRef)
	}
	return record.New(id, props, record.Icon{}, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
}
