package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"MatchOdds/internal/cache"
	"MatchOdds/internal/config"
	"MatchOdds/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestFetcher(apiKey string, m *metrics.Metrics) *Fetcher {
	cfg := config.ProviderConfig{APIKey: apiKey, Timeout: 5, RateLimitBackoff: 60}
	return NewFetcher("football_data", cfg, cache.NewMemoryCache(time.Minute), m, quietLogger())
}

func TestFetcherStatusHandling(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantBody   bool
		wantCached bool
		wantSleep  bool
	}{
		{"ok", http.StatusOK, `{"matches":[]}`, true, true, false},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, false, false, false},
		{"forbidden", http.StatusForbidden, `{}`, false, false, false},
		{"rate limited", http.StatusTooManyRequests, `{}`, false, false, true},
		{"malformed json", http.StatusOK, `<html>`, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			var slept []time.Duration
			f := newTestFetcher("key", nil).WithSleep(func(d time.Duration) { slept = append(slept, d) })

			ctx := context.Background()
			got := f.Get(ctx, "fd:test", srv.URL+"/x", nil)
			if (got != nil) != tt.wantBody {
				t.Fatalf("Get() body = %q, wantBody %v", got, tt.wantBody)
			}
			if tt.wantBody && string(got) != tt.body {
				t.Errorf("Get() = %s, want %s", got, tt.body)
			}
			if tt.wantSleep {
				if len(slept) != 1 || slept[0] != 60*time.Second {
					t.Errorf("slept = %v, want one 60s backoff", slept)
				}
			} else if len(slept) != 0 {
				t.Errorf("unexpected backoff sleep %v", slept)
			}

			f.Get(ctx, "fd:test", srv.URL+"/x", nil)
			wantCalls := int32(2)
			if tt.wantCached {
				wantCalls = 1
			}
			if c := atomic.LoadInt32(&calls); c != wantCalls {
				t.Errorf("upstream calls = %d, want %d", c, wantCalls)
			}
		})
	}
}

func TestFetcherMissingKeySkipsRequest(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	f := newTestFetcher("", nil)
	if f.Configured() {
		t.Fatal("Configured() = true with empty key")
	}
	if got := f.Get(context.Background(), "fd:x", srv.URL, nil); got != nil {
		t.Errorf("Get() = %q, want nil", got)
	}
	if calls != 0 {
		t.Errorf("upstream calls = %d, want 0", calls)
	}
}

func TestFetcherSendsHeadersAndRecordsMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Token") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	m := metrics.New()
	f := newTestFetcher("secret", m)
	headers := map[string]string{"X-Auth-Token": "secret"}

	var out struct {
		OK bool `json:"ok"`
	}
	if !f.GetJSON(context.Background(), "fd:h", srv.URL, headers, &out) || !out.OK {
		t.Fatalf("GetJSON() failed, out = %+v", out)
	}
	f.Get(context.Background(), "fd:h", srv.URL, headers)

	if got := testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("football_data", "200")); got != 1 {
		t.Errorf("upstream 200 count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CacheLookups.WithLabelValues("football_data", metrics.CacheHit)); got != 1 {
		t.Errorf("cache hits = %v, want 1", got)
	}
}

func TestFetcherCollapsesConcurrentMisses(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		<-release
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	f := newTestFetcher("key", nil)

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.Get(context.Background(), "odds:soccer_epl", srv.URL, nil)
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	if c := atomic.LoadInt32(&calls); c != 1 {
		t.Errorf("upstream calls = %d, want 1", c)
	}
	for i, r := range results {
		if string(r) != `[]` {
			t.Errorf("result[%d] = %q, want []", i, r)
		}
	}
}

func TestFetcherIgnoresCallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	f := newTestFetcher("key", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := f.Get(ctx, "fd:c", srv.URL, nil); string(got) != `{}` {
		t.Errorf("Get() with cancelled ctx = %q, want {}", got)
	}
}
