package audit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"casetender/internal/cache"
	"casetender/internal/model"
)

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:      5 * time.Second,
		CheckTimeout: 5 * time.Second,
		UserAgent:    "casetender-test/1.0",
		MaxBodyBytes: 1 << 20,
	}
}

func TestChecker_HeadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("Expected HEAD request, got %s", r.Method)
		}
		if r.Header.Get("User-Agent") != "casetender-test/1.0" {
			t.Errorf("Expected custom User-Agent, got %s", r.Header.Get("User-Agent"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	checker := NewChecker(testHTTPConfig(), model.CacheConfig{}, nil)
	if status := checker.Check(context.Background(), server.URL); status != http.StatusOK {
		t.Errorf("Expected 200, got %d", status)
	}
}

func TestChecker_404IsBroken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker := NewChecker(testHTTPConfig(), model.CacheConfig{}, nil)
	status := checker.Check(context.Background(), server.URL)
	if status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", status)
	}
	if Healthy(status) {
		t.Error("Expected 404 to be unhealthy")
	}
}

func TestChecker_RedirectNotFollowed(t *testing.T) {
	var followed atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/target" {
			followed.Store(true)
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Location", "/target")
		w.WriteHeader(http.StatusMovedPermanently)
	}))
	defer server.Close()

	checker := NewChecker(testHTTPConfig(), model.CacheConfig{}, nil)
	status := checker.Check(context.Background(), server.URL)

	if status != http.StatusMovedPermanently {
		t.Errorf("Expected raw 301, got %d", status)
	}
	if !Healthy(status) {
		t.Error("Expected 301 to be healthy")
	}
	if followed.Load() {
		t.Error("Expected redirect not to be followed")
	}
}

func TestChecker_FetchFailureSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	checker := NewChecker(testHTTPConfig(), model.CacheConfig{}, nil)
	status := checker.Check(context.Background(), url)

	if status != model.StatusFetchFailed {
		t.Errorf("Expected fetch-failed sentinel, got %d", status)
	}
	if Healthy(status) {
		t.Error("Expected sentinel to be unhealthy")
	}
}

func TestChecker_Memoizes(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := cache.NewMemoryCache(time.Minute, time.Minute)
	checker := NewChecker(testHTTPConfig(), model.CacheConfig{TTL: time.Minute}, c)

	for i := 0; i < 3; i++ {
		if status := checker.Check(context.Background(), server.URL); status != http.StatusNotFound {
			t.Fatalf("Check %d: expected 404, got %d", i, status)
		}
	}

	if got := hits.Load(); got != 1 {
		t.Errorf("Expected single upstream request, got %d", got)
	}
}

func TestHealthyStatuses(t *testing.T) {
	for _, status := range []int{200, 301, 302, 303, 307, 308} {
		if !Healthy(status) {
			t.Errorf("Expected %d healthy", status)
		}
	}
	for _, status := range []int{404, 500, 403, 204, model.StatusFetchFailed} {
		if Healthy(status) {
			t.Errorf("Expected %d unhealthy", status)
		}
	}
}

func TestStatusString(t *testing.T) {
	if got := StatusString(200); got != "OK" {
		t.Errorf("StatusString(200) = %q", got)
	}
	if got := StatusString(404); got != "FAIL:404" {
		t.Errorf("StatusString(404) = %q", got)
	}
	if got := StatusString(model.StatusFetchFailed); got != "FAIL:unreachable" {
		t.Errorf("StatusString(sentinel) = %q", got)
	}
}
