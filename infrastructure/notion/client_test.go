package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightowl-labs/homedash/domain/record"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("secret_token",
		WithBaseURL(srv.URL),
		WithMaxRetries(2),
		WithInitialDelay(time.Millisecond),
	)
}

func TestDatabaseSchema(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/databases/db-1", r.URL.Path)
		assert.Equal(t, "Bearer secret_token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("Notion-Version"))

		_, _ = w.Write([]byte(`{
			"id": "db-1",
			"properties": {
				"Name":   {"type": "title"},
				"Ticker": {"type": "rich_text"},
				"Price":  {"type": "number"}
			}
		}`))
	})

	schema, err := client.DatabaseSchema(context.Background(), "db-1")
	require.NoError(t, err)
	require.Len(t, schema, 3)
	assert.Equal(t, record.TypeTitle, schema["Name"].Type())
	assert.Equal(t, "Ticker", schema["Ticker"].Name())
	assert.Equal(t, record.TypeNumber, schema["Price"].Type())
}

func TestQueryDatabaseMapsRecords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/databases/db-1/query", r.URL.Path)

		var req queryRequestDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 100, req.PageSize)

		_, _ = w.Write([]byte(`{
			"results": [{
				"id": "abc-123-def",
				"last_edited_time": "2024-03-01T12:00:00Z",
				"icon": {"type": "external", "external": {"url": "https://img.example.com/logo.png"}},
				"properties": {
					"Name":  {"type": "title", "title": [{"plain_text": "Acme Corp"}]},
					"Price": {"type": "number", "number": 42.5},
					"Asset": {"type": "relation", "relation": [{"id": "rel-1"}, {"id": "rel-2"}]}
				}
			}],
			"has_more": false,
			"next_cursor": null
		}`))
	})

	records, err := client.QueryDatabase(context.Background(), "db-1")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "abc-123-def", rec.ID())
	assert.Equal(t, "abc123def", rec.NormalizedID())
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), rec.LastEditedAt())
	assert.True(t, rec.Icon().IsImage())
	assert.Equal(t, "https://img.example.com/logo.png", rec.Icon().URL())

	name, ok := rec.Property("Name")
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", record.Decode(name))

	asset, ok := rec.Property("Asset")
	require.True(t, ok)
	assert.Equal(t, []string{"rel-1", "rel-2"}, asset.RelationIDs())
}

func TestQueryDatabaseFollowsCursor(t *testing.T) {
	var cursors []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req queryRequestDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		cursors = append(cursors, req.StartCursor)

		if req.StartCursor == "" {
			_, _ = w.Write([]byte(`{
				"results": [{"id": "r1", "last_edited_time": "2024-01-01T00:00:00Z", "properties": {}}],
				"has_more": true,
				"next_cursor": "cursor-2"
			}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"results": [{"id": "r2", "last_edited_time": "2024-01-01T00:00:00Z", "properties": {}}],
			"has_more": false,
			"next_cursor": null
		}`))
	})

	records, err := client.QueryDatabase(context.Background(), "db-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r1", records[0].ID())
	assert.Equal(t, "r2", records[1].ID())
	assert.Equal(t, []string{"", "cursor-2"}, cursors)
}

func TestQueryDatabaseRetriesTransientFailure(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"results": [], "has_more": false, "next_cursor": null}`))
	})

	records, err := client.QueryDatabase(context.Background(), "db-1")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 2, calls)
}

func TestQueryDatabaseDoesNotRetryClientError(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code": "object_not_found", "message": "Could not find database"}`))
	})

	_, err := client.QueryDatabase(context.Background(), "db-1")
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var srcErr *Error
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, http.StatusNotFound, srcErr.StatusCode)
	assert.Equal(t, "object_not_found", srcErr.Code)
}
