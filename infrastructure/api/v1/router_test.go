package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nightowl-labs/homedash"
	"github.com/nightowl-labs/homedash/domain/record"
	"github.com/nightowl-labs/homedash/domain/service"
	v1 "github.com/nightowl-labs/homedash/infrastructure/api/v1"
	"github.com/nightowl-labs/homedash/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	identityHeader = "X-Auth-User"
	syncSecret     = "hook-secret"
)

type fakeSource struct {
	schemas   map[string]record.Schema
	records   map[string][]record.Record
	schemaErr map[string]error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		schemas:   map[string]record.Schema{},
		records:   map[string][]record.Record{},
		schemaErr: map[string]error{},
	}
}

func (f *fakeSource) DatabaseSchema(_ context.Context, databaseID string) (record.Schema, error) {
	if err := f.schemaErr[databaseID]; err != nil {
		return nil, err
	}
	return f.schemas[databaseID], nil
}

func (f *fakeSource) QueryDatabase(_ context.Context, databaseID string) ([]record.Record, error) {
	return f.records[databaseID], nil
}

var _ service.Source = (*fakeSource)(nil)

func titleProperty(text string) record.Property {
	return record.Property{
		Type:  record.TypeTitle,
		Title: []record.RichText{{PlainText: text}},
	}
}

func (f *fakeSource) setDatabase(databaseID, titleField string, names ...string) {
	f.schemas[databaseID] = record.Schema{
		titleField: record.NewSchemaEntry(record.TypeTitle, titleField),
	}
	records := make([]record.Record, 0, len(names))
	for i, name := range names {
		records = append(records, record.New(
			"rec-"+name,
			map[string]record.Property{titleField: titleProperty(name)},
			record.Icon{},
			time.Date(2024, 3, 1, 12, 0, i, 0, time.UTC),
		))
	}
	f.records[databaseID] = records
}

type fixture struct {
	server *httptest.Server
	source *fakeSource
	client *homedash.Client
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	source := newFakeSource()

	client, err := homedash.New(
		homedash.WithDataDir(t.TempDir()),
		homedash.WithDatabaseURL("sqlite:///:memory:"),
		homedash.WithSourceClient(source),
		homedash.WithSyncSecrets(syncSecret),
		homedash.WithIdentityVerifier(auth.NewHeaderVerifier()),
		homedash.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	server := httptest.NewServer(v1.NewRouter(client))
	t.Cleanup(server.Close)

	return fixture{server: server, source: source, client: client}
}

func (f fixture) request(t *testing.T, method, path, owner string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	if owner != "" {
		req.Header.Set(identityHeader, owner)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func (f fixture) putLink(t *testing.T, owner, kind, databaseID string) {
	t.Helper()
	resp := f.request(t, http.MethodPut, "/api/v1/links/"+kind, owner, map[string]string{"databaseId": databaseID})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSyncRequiresAuthentication(t *testing.T) {
	f := newFixture(t)

	resp := f.request(t, http.MethodPost, "/api/v1/sync", "", nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSyncRejectsWrongSecret(t *testing.T) {
	f := newFixture(t)

	req, err := http.NewRequest(http.MethodPost, f.server.URL+"/api/v1/sync", bytes.NewReader([]byte(`{"userId":"u1"}`)))
	require.NoError(t, err)
	req.Header.Set("X-Sync-Secret", "not-the-secret")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSyncWithoutLinksIsBadRequest(t *testing.T) {
	f := newFixture(t)

	resp := f.request(t, http.MethodPost, "/api/v1/sync", "u1", nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSyncWithIdentitySyncsLinkedDatabases(t *testing.T) {
	f := newFixture(t)
	f.source.setDatabase("db-assets", "Name", "Bitcoin", "Gold")
	f.putLink(t, "u1", "asset", "db-assets")

	resp := f.request(t, http.MethodPost, "/api/v1/sync", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Success bool   `json:"success"`
		Trigger string `json:"trigger"`
		Results map[string]struct {
			Success bool `json:"success"`
			Added   int  `json:"added"`
			Total   int  `json:"total"`
		} `json:"results"`
	}
	decodeBody(t, resp, &out)

	assert.True(t, out.Success)
	assert.Equal(t, "api", out.Trigger)
	require.Contains(t, out.Results, "asset")
	assert.True(t, out.Results["asset"].Success)
	assert.Equal(t, 2, out.Results["asset"].Added)
	assert.Equal(t, 2, out.Results["asset"].Total)
}

func TestSyncWebhookTargetsOneKind(t *testing.T) {
	f := newFixture(t)
	f.source.setDatabase("db-assets", "Name", "Bitcoin")
	f.source.setDatabase("db-places", "Name", "Cottage")
	f.putLink(t, "u1", "asset", "db-assets")
	f.putLink(t, "u1", "place", "db-places")

	req, err := http.NewRequest(http.MethodPost, f.server.URL+"/api/v1/sync",
		bytes.NewReader([]byte(`{"userId":"u1","dbType":"asset"}`)))
	require.NoError(t, err)
	req.Header.Set("X-Sync-Secret", syncSecret)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Trigger string                     `json:"trigger"`
		Results map[string]json.RawMessage `json:"results"`
	}
	decodeBody(t, resp, &out)

	assert.Equal(t, "webhook", out.Trigger)
	assert.Len(t, out.Results, 1)
	assert.Contains(t, out.Results, "asset")
}

func TestSyncWebhookRequiresUserID(t *testing.T) {
	f := newFixture(t)

	req, err := http.NewRequest(http.MethodPost, f.server.URL+"/api/v1/sync", bytes.NewReader([]byte(`{}`)))
	require.NoError(t, err)
	req.Header.Set("X-Sync-Secret", syncSecret)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSyncReportsPartialFailure(t *testing.T) {
	f := newFixture(t)
	f.source.setDatabase("db-assets", "Name", "Bitcoin")
	f.source.setDatabase("db-places", "Name", "Cottage")
	f.source.schemaErr["db-places"] = errors.New("service unavailable")
	f.putLink(t, "u1", "asset", "db-assets")
	f.putLink(t, "u1", "place", "db-places")

	resp := f.request(t, http.MethodPost, "/api/v1/sync", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Success bool `json:"success"`
		Results map[string]struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		} `json:"results"`
	}
	decodeBody(t, resp, &out)

	assert.True(t, out.Success)
	assert.True(t, out.Results["asset"].Success)
	assert.False(t, out.Results["place"].Success)
	assert.NotEmpty(t, out.Results["place"].Error)
}

func TestHoldingsRequireIdentity(t *testing.T) {
	f := newFixture(t)

	resp := f.request(t, http.MethodGet, "/api/v1/assets", "", nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHoldingsListSyncedAssets(t *testing.T) {
	f := newFixture(t)
	f.source.setDatabase("db-assets", "Name", "Bitcoin", "Apple")
	f.putLink(t, "u1", "asset", "db-assets")

	syncResp := f.request(t, http.MethodPost, "/api/v1/sync", "u1", nil)
	require.Equal(t, http.StatusOK, syncResp.StatusCode)
	_ = syncResp.Body.Close()

	resp := f.request(t, http.MethodGet, "/api/v1/assets", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []struct {
		Name       string `json:"name"`
		ExternalID string `json:"externalId"`
	}
	decodeBody(t, resp, &out)

	require.Len(t, out, 2)
	assert.Equal(t, "Apple", out[0].Name)
	assert.Equal(t, "Bitcoin", out[1].Name)
}

func TestHoldingsArePaginated(t *testing.T) {
	f := newFixture(t)
	f.source.setDatabase("db-assets", "Name", "Apple", "Bitcoin", "Cash")
	f.putLink(t, "u1", "asset", "db-assets")

	syncResp := f.request(t, http.MethodPost, "/api/v1/sync", "u1", nil)
	require.Equal(t, http.StatusOK, syncResp.StatusCode)
	_ = syncResp.Body.Close()

	var out []struct {
		Name string `json:"name"`
	}

	resp := f.request(t, http.MethodGet, "/api/v1/assets?page_size=2", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &out)
	require.Len(t, out, 2)
	assert.Equal(t, "Apple", out[0].Name)
	assert.Equal(t, "Bitcoin", out[1].Name)

	resp = f.request(t, http.MethodGet, "/api/v1/assets?page=2&page_size=2", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "Cash", out[0].Name)
}

func TestHoldingsAreScopedToOwner(t *testing.T) {
	f := newFixture(t)
	f.source.setDatabase("db-assets", "Name", "Bitcoin")
	f.putLink(t, "u1", "asset", "db-assets")

	syncResp := f.request(t, http.MethodPost, "/api/v1/sync", "u1", nil)
	require.Equal(t, http.StatusOK, syncResp.StatusCode)
	_ = syncResp.Body.Close()

	resp := f.request(t, http.MethodGet, "/api/v1/assets", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []json.RawMessage
	decodeBody(t, resp, &out)
	assert.Empty(t, out)
}

func TestLinksLifecycle(t *testing.T) {
	f := newFixture(t)

	f.putLink(t, "u1", "asset", "db-assets")
	f.putLink(t, "u1", "investment", "db-investments")

	resp := f.request(t, http.MethodGet, "/api/v1/links", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var links []struct {
		Kind       string `json:"kind"`
		DatabaseID string `json:"databaseId"`
	}
	decodeBody(t, resp, &links)
	require.Len(t, links, 2)

	deleteResp := f.request(t, http.MethodDelete, "/api/v1/links/investment", "u1", nil)
	require.Equal(t, http.StatusNoContent, deleteResp.StatusCode)
	_ = deleteResp.Body.Close()

	resp = f.request(t, http.MethodGet, "/api/v1/links", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &links)
	require.Len(t, links, 1)
	assert.Equal(t, "asset", links[0].Kind)
}

func TestLinksRejectUnknownKind(t *testing.T) {
	f := newFixture(t)

	resp := f.request(t, http.MethodPut, "/api/v1/links/vehicle", "u1", map[string]string{"databaseId": "db-x"})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRunsHistoryIsRecorded(t *testing.T) {
	f := newFixture(t)
	f.source.setDatabase("db-assets", "Name", "Bitcoin")
	f.putLink(t, "u1", "asset", "db-assets")

	for range 2 {
		syncResp := f.request(t, http.MethodPost, "/api/v1/sync", "u1", nil)
		require.Equal(t, http.StatusOK, syncResp.StatusCode)
		_ = syncResp.Body.Close()
	}

	resp := f.request(t, http.MethodGet, "/api/v1/sync/runs?page_size=1", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var runs []struct {
		ID      string `json:"id"`
		Trigger string `json:"trigger"`
	}
	decodeBody(t, resp, &runs)

	require.Len(t, runs, 1)
	assert.Equal(t, "api", runs[0].Trigger)
	assert.NotEmpty(t, runs[0].ID)
}
