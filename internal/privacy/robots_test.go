package privacy

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestChecker() *RobotsChecker {
	return NewRobotsChecker("lessonsift-test", 5*time.Second)
}

func TestRobotsChecker_Check_Allowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			t.Errorf("Expected /robots.txt request, got %s", r.URL.Path)
		}
		fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
	}))
	defer server.Close()

	checker := newTestChecker()
	decision := checker.Check(server.URL + "/articles/intro")

	if !decision.Allowed {
		t.Errorf("Expected allowed, got denied: %s", decision.Reason)
	}
	if decision.Reason != ReasonAllowed {
		t.Errorf("Expected reason %q, got %q", ReasonAllowed, decision.Reason)
	}
}

func TestRobotsChecker_Check_Disallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
	}))
	defer server.Close()

	checker := newTestChecker()
	decision := checker.Check(server.URL + "/private/page")

	if decision.Allowed {
		t.Error("Expected disallowed path to be denied")
	}
	if decision.Reason != ReasonDisallowed {
		t.Errorf("Expected reason %q, got %q", ReasonDisallowed, decision.Reason)
	}
}

func TestRobotsChecker_Check_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker := newTestChecker()
	decision := checker.Check(server.URL + "/anything")

	// A site that answers but has no robots.txt imposes no restriction.
	if !decision.Allowed {
		t.Errorf("Expected missing robots.txt to allow, got denied: %s", decision.Reason)
	}
	if decision.Reason != ReasonNoRobots {
		t.Errorf("Expected reason %q, got %q", ReasonNoRobots, decision.Reason)
	}
}

func TestRobotsChecker_Check_UnreachableHostDenies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // connection refused from here on

	checker := newTestChecker()
	decision := checker.Check(url + "/anything")

	// An unreachable robots endpoint fails closed, unlike an absent one.
	if decision.Allowed {
		t.Error("Expected unreachable host to be denied")
	}
	if decision.Reason != ReasonFetchError {
		t.Errorf("Expected reason %q, got %q", ReasonFetchError, decision.Reason)
	}
}

func TestRobotsChecker_Check_InvalidURL(t *testing.T) {
	checker := newTestChecker()

	decision := checker.Check("://no-scheme")

	if decision.Allowed {
		t.Error("Expected invalid URL to be denied")
	}
	if decision.Reason != ReasonInvalidURL {
		t.Errorf("Expected reason %q, got %q", ReasonInvalidURL, decision.Reason)
	}
}

func TestRobotsChecker_Check_CachesPerHost(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
	}))
	defer server.Close()

	checker := newTestChecker()
	checker.Check(server.URL + "/a")
	checker.Check(server.URL + "/b")
	checker.Check(server.URL + "/private/c")

	if fetches != 1 {
		t.Errorf("Expected one robots.txt fetch for three checks, got %d", fetches)
	}
}

func TestRobotsChecker_Check_SpecificAgentRules(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "User-agent: lessonsift-test\nDisallow: /\n\nUser-agent: *\nAllow: /\n")
	}))
	defer server.Close()

	checker := newTestChecker()
	decision := checker.Check(server.URL + "/page")

	if decision.Allowed {
		t.Error("Expected agent-specific disallow to apply")
	}
}

func TestRobotsChecker_ClearCache(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		fmt.Fprint(w, "User-agent: *\nAllow: /\n")
	}))
	defer server.Close()

	checker := newTestChecker()
	checker.Check(server.URL + "/a")
	checker.ClearCache()
	checker.Check(server.URL + "/b")

	if fetches != 2 {
		t.Errorf("Expected refetch after cache clear, got %d fetches", fetches)
	}
}
