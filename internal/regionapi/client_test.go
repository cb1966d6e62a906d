package regionapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/corphq/api/internal/core/domain"
	"github.com/corphq/api/internal/pkg/retry"
)

func testPolicy() retry.Policy {
	return retry.Policy{Sleep: func(time.Duration) {}}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL, UserAgent: "corp-hq test agent"}, testPolicy(), zerolog.Nop())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func TestClient_RegionIDs(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/universe/regions/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[10000001, 10000002, 10000003]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ids, err := client.RegionIDs(context.Background())
	if err != nil {
		t.Fatalf("RegionIDs returned error: %v", err)
	}
	if len(ids) != 3 || ids[0] != 10000001 {
		t.Fatalf("unexpected ids: %v", ids)
	}
	if gotAgent != "corp-hq test agent" {
		t.Fatalf("expected configured user agent, got %q", gotAgent)
	}
}

func TestClient_RegionDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/universe/regions/10000002/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"region_id":10000002,"name":"The Forge","constellations":[20000001,20000002],"description":"trade hub"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	region, err := client.RegionDetails(context.Background(), 10000002)
	if err != nil {
		t.Fatalf("RegionDetails returned error: %v", err)
	}
	if region.RegionID != 10000002 || region.Name != "The Forge" {
		t.Fatalf("unexpected region: %+v", region)
	}
	if len(region.Constellations) != 2 {
		t.Fatalf("unexpected constellations: %v", region.Constellations)
	}
	if region.Description != "trade hub" {
		t.Fatalf("unexpected description: %q", region.Description)
	}
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[1]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ids, err := client.RegionIDs(context.Background())
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if len(ids) != 1 || calls != 3 {
		t.Fatalf("expected 3 calls and one id, got calls=%d ids=%v", calls, ids)
	}
}

func TestClient_GivesUpAfterRetryLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	if _, err := client.RegionIDs(context.Background()); err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	if calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", calls)
	}
}

type configStoreStub struct {
	values map[string]string
}

func (s *configStoreStub) Save(_ context.Context, entry domain.ConfigEntry) error {
	s.values[entry.Key] = entry.Value
	return nil
}

func (s *configStoreStub) Value(_ context.Context, key string) (string, error) {
	return s.values[key], nil
}

func TestLoadConfig_StoreOverridesFallback(t *testing.T) {
	store := &configStoreStub{values: map[string]string{
		ConfigKeyBaseURL: "https://configured.example",
	}}
	fallback := Config{BaseURL: "https://fallback.example", UserAgent: "fallback agent"}

	cfg, err := LoadConfig(context.Background(), store, fallback)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.BaseURL != "https://configured.example" {
		t.Fatalf("expected store value to win, got %q", cfg.BaseURL)
	}
	if cfg.UserAgent != "fallback agent" {
		t.Fatalf("expected fallback for absent entry, got %q", cfg.UserAgent)
	}
}
