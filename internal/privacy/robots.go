package privacy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/temoto/robotstxt"

	"github.com/avoronova/lessonsift/internal/model"
	"github.com/avoronova/lessonsift/internal/worker"
)

// Decision reasons. The absent/error asymmetry is deliberate: a site that
// explicitly has no robots.txt imposes no restriction, while an
// unreachable one is treated as a signal of trouble and fails closed.
// Do not collapse these two cases.
const (
	ReasonNoRobots    = "No robots.txt found"
	ReasonFetchError  = "Error checking robots.txt"
	ReasonAllowed     = "Allowed by robots.txt"
	ReasonDisallowed  = "Disallowed by robots.txt"
	ReasonMalformed   = "Malformed robots.txt, defaulting to allowed"
	ReasonInvalidURL  = "Invalid URL"
	ReasonRateLimited = "Rate limited before robots.txt check"
)

// RobotsChecker fetches and interprets robots.txt per host, caching the
// parsed data so repeated extractions from one site cost one fetch.
type RobotsChecker struct {
	cache      *gocache.Cache
	httpClient *http.Client
	userAgent  string
	limiter    *worker.Limiter
}

// NewRobotsChecker creates a robots.txt checker.
func NewRobotsChecker(userAgent string, timeout time.Duration) *RobotsChecker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RobotsChecker{
		cache:      gocache.New(15*time.Minute, 5*time.Minute),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		limiter:    worker.NewLimiter(2, 5),
	}
}

// Check decides whether rawURL's path may be fetched under the site's
// robots.txt. One fetch per extraction attempt, no retry: a slow or
// failing robots endpoint must not stall the extraction flow, so the
// failure maps straight to a denial.
func (r *RobotsChecker) Check(rawURL string) model.RobotsDecision {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return model.RobotsDecision{Allowed: false, Reason: ReasonInvalidURL}
	}

	data, decision := r.robotsData(parsed)
	if data == nil {
		return decision
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if data.TestAgent(path, r.userAgent) {
		return model.RobotsDecision{Allowed: true, Reason: ReasonAllowed}
	}
	return model.RobotsDecision{Allowed: false, Reason: ReasonDisallowed}
}

// robotsData returns parsed robots data for the host, or nil with a
// final decision when no per-path evaluation applies.
func (r *RobotsChecker) robotsData(parsed *url.URL) (*robotstxt.RobotsData, model.RobotsDecision) {
	if cached, ok := r.cache.Get(parsed.Host); ok {
		return cached.(*robotstxt.RobotsData), model.RobotsDecision{}
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)

	ctx, cancel := context.WithTimeout(context.Background(), r.httpClient.Timeout)
	defer cancel()

	if err := r.limiter.Wait(ctx, robotsURL); err != nil {
		return nil, model.RobotsDecision{Allowed: false, Reason: ReasonRateLimited}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, model.RobotsDecision{Allowed: false, Reason: ReasonFetchError}
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		// Fail closed: unreachable is not the same as absent.
		return nil, model.RobotsDecision{Allowed: false, Reason: ReasonFetchError}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Explicitly absent robots.txt means no restriction.
		return nil, model.RobotsDecision{Allowed: true, Reason: ReasonNoRobots}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, model.RobotsDecision{Allowed: false, Reason: ReasonFetchError}
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		// Content with no recognizable directives restricts nothing.
		return nil, model.RobotsDecision{Allowed: true, Reason: ReasonMalformed}
	}

	r.cache.Set(parsed.Host, data, gocache.DefaultExpiration)
	return data, model.RobotsDecision{}
}

// ClearCache drops all cached robots.txt data.
func (r *RobotsChecker) ClearCache() {
	r.cache.Flush()
}
