package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioutils/studioutils/internal/aggregate"
	"github.com/studioutils/studioutils/internal/catalog"
	"github.com/studioutils/studioutils/internal/launcher"
	"github.com/studioutils/studioutils/internal/metrics"
)

type recordingOpener struct {
	mu      sync.Mutex
	targets []string
}

func (r *recordingOpener) Open(target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets = append(r.targets, target)
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *launcher.Launcher, *recordingOpener) {
	t.Helper()
	reg, err := catalog.New([]catalog.Tool{
		{ID: "export-data", Name: "Export Data", Icon: "📤", Category: catalog.Data, Status: catalog.Available},
		{ID: "bulk-data-operations", Name: "Bulk Data Operations", Icon: "📊", Category: catalog.Data, Status: catalog.Available},
		{ID: "asset-audit", Name: "Asset Audit", Icon: "🧾", Category: catalog.Assets, Status: catalog.ComingSoon},
	})
	require.NoError(t, err)

	ns, err := aggregate.Compose(
		aggregate.Package{ID: "studio-utilities", Version: "1.0.0", Exports: map[string]any{"StudioUtilities": 1}},
		[]aggregate.Package{{ID: "sanity-export-data", Version: "1.3.0", Exports: map[string]any{"ExportDataTool": 2}}},
	)
	require.NoError(t, err)

	promReg := prometheus.NewRegistry()
	rec := metrics.NewPrometheus(promReg)
	opener := &recordingOpener{}
	l := launcher.New(reg, opener, launcher.WithStudioURL("http://studio.test"), launcher.WithMetrics(rec))

	srv := New(Options{
		Registry:  reg,
		Launcher:  l,
		Namespace: ns,
		Gatherer:  promReg,
		Metrics:   rec,
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, l, opener
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestCategories(t *testing.T) {
	ts, _, _ := newTestServer(t)

	var got []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/categories", &got))
	require.Len(t, got, 5)
	assert.Equal(t, "all", got[0].ID)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, "data", got[1].ID)
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, 0, got[3].Count)
}

func TestTools(t *testing.T) {
	ts, _, _ := newTestServer(t)

	tests := []struct {
		name    string
		query   string
		status  int
		wantIDs []string
		empty   bool
	}{
		{name: "all by default", query: "", status: http.StatusOK, wantIDs: []string{"export-data", "bulk-data-operations", "asset-audit"}},
		{name: "data", query: "?category=data", status: http.StatusOK, wantIDs: []string{"export-data", "bulk-data-operations"}},
		{name: "empty category", query: "?category=optimization", status: http.StatusOK, wantIDs: []string{}, empty: true},
		{name: "unknown category", query: "?category=bogus", status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Tools []struct {
					ID string `json:"id"`
				} `json:"tools"`
				Empty bool `json:"empty"`
			}
			status := getJSON(t, ts.URL+"/api/tools"+tt.query, &got)
			require.Equal(t, tt.status, status)
			if tt.status != http.StatusOK {
				return
			}
			ids := make([]string, 0, len(got.Tools))
			for _, tool := range got.Tools {
				ids = append(ids, tool.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.empty, got.Empty)
		})
	}
}

func TestLaunch(t *testing.T) {
	ts, l, opener := newTestServer(t)

	tests := []struct {
		id     string
		status int
	}{
		{id: "export-data", status: http.StatusAccepted},
		{id: "asset-audit", status: http.StatusConflict},
		{id: "nope", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/tools/"+tt.id+"/launch", "application/json", nil)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			if tt.status == http.StatusAccepted {
				assert.Equal(t, "http://studio.test/desk/export-data", body["target"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}

	l.Wait()
	opener.mu.Lock()
	defer opener.mu.Unlock()
	assert.Equal(t, []string{"http://studio.test/desk/export-data"}, opener.targets)
}

func TestLaunchRequiresPost(t *testing.T) {
	ts, _, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/tools/export-data/launch")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestExports(t *testing.T) {
	ts, _, _ := newTestServer(t)

	var got []struct {
		ID      string   `json:"id"`
		Version string   `json:"version"`
		Symbols []string `json:"symbols"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/exports", &got))
	require.Len(t, got, 2)
	assert.Equal(t, "studio-utilities", got[0].ID)
	assert.Equal(t, "sanity-export-data", got[1].ID)
	assert.Equal(t, "1.3.0", got[1].Version)
	assert.Equal(t, []string{"ExportDataTool"}, got[1].Symbols)
}

func TestHealthz(t *testing.T) {
	ts, _, _ := newTestServer(t)
	var got map[string]any
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/healthz", &got))
	assert.Equal(t, "ok", got["status"])
}

func TestLaunchUnknownIDsShareOneSeries(t *testing.T) {
	reg, err := catalog.New([]catalog.Tool{
		{ID: "export-data", Name: "Export Data", Category: catalog.Data, Status: catalog.Available},
	})
	require.NoError(t, err)
	promReg := prometheus.NewRegistry()
	rec := metrics.NewPrometheus(promReg)
	l := launcher.New(reg, &recordingOpener{}, launcher.WithMetrics(rec))
	ts := httptest.NewServer(New(Options{Registry: reg, Launcher: l, Gatherer: promReg, Metrics: rec}).Handler())
	defer ts.Close()

	for i := 0; i < 100; i++ {
		resp, err := http.Post(fmt.Sprintf("%s/api/tools/bogus-%d/launch", ts.URL, i), "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	count, err := testutil.GatherAndCount(promReg, "studioutils_launches_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetricsEndpoint(t *testing.T) {
	ts, l, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/tools/export-data/launch", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	getJSON(t, ts.URL+"/api/tools?category=bogus", nil)
	l.Wait()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	var sb strings.Builder
	_, err = io.Copy(&sb, resp.Body)
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, `studioutils_launches_total{result="dispatched",tool_id="export-data"} 1`)
	assert.Contains(t, out, `studioutils_category_selections_total{category="unknown",result="rejected"} 1`)
}
