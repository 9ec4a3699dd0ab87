package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"casetender/internal/cache"
	"casetender/internal/model"
	"casetender/internal/util"
)

// healthyStatuses are the HTTP statuses treated as a working link. Redirects
// are not followed, so 3xx statuses are observed and accepted as-is.
var healthyStatuses = map[int]bool{
	200: true, 301: true, 302: true, 303: true, 307: true, 308: true,
}

// Healthy classifies a check status.
func Healthy(status int) bool {
	return healthyStatuses[status]
}

// Checker performs HEAD-style status checks, memoized through the cache
// layer so each unique URL is checked at most once per TTL window.
type Checker struct {
	httpClient *http.Client
	userAgent  string
	cache      cache.Cache
	ttl        time.Duration
}

// NewChecker creates a Checker. c may be nil to disable memoization.
func NewChecker(cfg model.HTTPConfig, cacheCfg model.CacheConfig, c cache.Cache) *Checker {
	return &Checker{
		httpClient: &http.Client{
			Timeout: cfg.CheckTimeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			// Observe redirect statuses instead of following them; the
			// healthy set classifies them directly.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent: cfg.UserAgent,
		cache:     c,
		ttl:       cacheCfg.TTL,
	}
}

type cachedStatus struct {
	Status int `json:"status"`
}

// Check returns the HTTP status for the URL, or StatusFetchFailed when the
// request could not complete. Failures are recorded, never propagated.
func (c *Checker) Check(ctx context.Context, rawURL string) int {
	key := cache.Key(rawURL)

	if c.cache != nil {
		if data, ok := c.cache.Get(key); ok {
			var cs cachedStatus
			if err := json.Unmarshal(data, &cs); err == nil {
				return cs.Status
			}
		}
	}

	status := c.check(ctx, rawURL)

	if c.cache != nil {
		if data, err := json.Marshal(cachedStatus{Status: status}); err == nil {
			_ = c.cache.Set(key, data, c.ttl)
		}
	}

	return status
}

func (c *Checker) check(ctx context.Context, rawURL string) int {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return model.StatusFetchFailed
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.StatusFetchFailed
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode
}

// StatusString renders a status for the console report.
func StatusString(status int) string {
	if status == model.StatusFetchFailed {
		return "FAIL:unreachable"
	}
	if Healthy(status) {
		return "OK"
	}
	return fmt.Sprintf("FAIL:%d", status)
}
