package api_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eplotdb/internal/api"
	"eplotdb/internal/catalog"
	"eplotdb/internal/deps"
	"eplotdb/internal/extract"
	"eplotdb/internal/loader"
	"eplotdb/internal/testsupport"
)

func newTestServer(t *testing.T) (*httptest.Server, *catalog.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	episodes := []extract.Episode{
		extract.Extract("Show A_01_x.md", "title: \"Show A 1\"\ntags: [202401]\ndescription: \"first\""),
		extract.Extract("Show A_02_x.md", "title: \"Show A 2\"\ntags: [202402]\ndescription: \"second\""),
		extract.Extract("Solo_01.md", "title: \"Solo\""),
	}
	if _, err := loader.Load(context.Background(), store, episodes, loader.Consolidate(episodes), nil); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	server := api.NewServer("127.0.0.1:0", store, []deps.Requirement{{Name: "Git", Command: "clearly-not-present-git", Optional: true}}, nil)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts, store
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("GET %s: content type %q", url, ct)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
}

func TestListSeries(t *testing.T) {
	ts, _ := newTestServer(t)
	var series []api.Series
	getJSON(t, ts.URL+"/api/series", http.StatusOK, &series)
	if len(series) != 2 || series[0].Name != "Show A" || series[0].Month != "01" || series[1].Name != "Solo" {
		t.Fatalf("unexpected series %+v", series)
	}
}

func TestGetSeriesAndEpisodes(t *testing.T) {
	ts, _ := newTestServer(t)

	var series api.Series
	getJSON(t, ts.URL+"/api/series/1", http.StatusOK, &series)
	if series.Name != "Show A" {
		t.Fatalf("unexpected series %+v", series)
	}

	var episodes []api.Episode
	getJSON(t, ts.URL+"/api/series/1/episodes", http.StatusOK, &episodes)
	if len(episodes) != 2 || episodes[0].Name != "Show A 1" || episodes[1].Number != "02" || episodes[1].SeriesID != 1 {
		t.Fatalf("unexpected episodes %+v", episodes)
	}

	var errBody api.ErrorResponse
	getJSON(t, ts.URL+"/api/series/99", http.StatusNotFound, &errBody)
	if errBody.Error == "" {
		t.Fatal("expected error message")
	}
	getJSON(t, ts.URL+"/api/series/abc", http.StatusBadRequest, nil)
	getJSON(t, ts.URL+"/api/series/99/episodes", http.StatusNotFound, nil)
}

func TestListEpisodesFilter(t *testing.T) {
	ts, _ := newTestServer(t)

	var all []api.Episode
	getJSON(t, ts.URL+"/api/episodes", http.StatusOK, &all)
	if len(all) != 3 {
		t.Fatalf("expected 3 episodes, got %d", len(all))
	}

	var solo []api.Episode
	getJSON(t, ts.URL+"/api/episodes?series=Solo", http.StatusOK, &solo)
	if len(solo) != 1 || solo[0].SeriesID != 2 || solo[0].Abstract != "" {
		t.Fatalf("unexpected filtered episodes %+v", solo)
	}

	var none []api.Episode
	getJSON(t, ts.URL+"/api/episodes?series=Nobody", http.StatusOK, &none)
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty list, got %#v", none)
	}
}

func TestStatus(t *testing.T) {
	ts, store := newTestServer(t)
	var status api.Status
	getJSON(t, ts.URL+"/api/status", http.StatusOK, &status)
	if status.DatabasePath != store.Path() || !status.DatabaseExists || !status.IntegrityOK {
		t.Fatalf("unexpected status %+v", status)
	}
	if status.SeriesCount != 2 || status.EpisodeCount != 3 {
		t.Fatalf("unexpected counts %+v", status)
	}
	if len(status.Dependencies) != 1 || status.Dependencies[0].Available {
		t.Fatalf("unexpected dependencies %+v", status.Dependencies)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts, _ := newTestServer(t)
	getJSON(t, ts.URL+"/api/nope", http.StatusNotFound, nil)
}

func TestServeStopsOnCancel(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	server := api.NewServer(cfg.API.Bind, store, nil, nil)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/api/series")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
