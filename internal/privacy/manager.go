// Package privacy enforces the extraction policy: domain deny-lists,
// robots.txt compliance, PII redaction, consent bookkeeping, and source
// attribution. Every check fails closed: when a decision cannot be
// completed, the answer is no.
package privacy

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avoronova/lessonsift/internal/model"
)

// Log bounds: once the usage log exceeds maxLogEntries it is trimmed to
// the most recent keepLogEntries.
const (
	maxLogEntries  = 100
	keepLogEntries = 50
)

// deniedDomains are never extracted from, regardless of robots.txt.
// Matching is by suffix, so subdomains are covered.
var deniedDomains = []string{
	// social networks
	"facebook.com", "twitter.com", "x.com", "instagram.com", "tiktok.com",
	"linkedin.com", "reddit.com", "snapchat.com",
	// banking and financial
	"chase.com", "bankofamerica.com", "wellsfargo.com", "citibank.com",
	"hsbc.com", "paypal.com", "coinbase.com",
	// webmail
	"mail.google.com", "gmail.com", "outlook.com", "outlook.live.com",
	"mail.yahoo.com", "protonmail.com", "proton.me",
}

// Manager owns privacy state for one session. It is constructed
// explicitly and injected into the extraction orchestrator; NewDefault
// covers the common shared-defaults case without hidden process state.
type Manager struct {
	mu       sync.Mutex
	settings model.PrivacySettings
	consent  *model.ConsentRecord
	session  string
	usageLog []model.DataUsageLogEntry
	robots   *RobotsChecker
	now      func() time.Time
}

// NewManager creates a manager with the given settings.
func NewManager(settings model.PrivacySettings, robots *RobotsChecker) *Manager {
	if settings.MaxContentSize < 0 {
		settings.MaxContentSize = 0
	}
	return &Manager{
		settings: settings,
		session:  newSessionID(),
		robots:   robots,
		now:      time.Now,
	}
}

// NewDefault creates a manager with default settings and a default
// robots checker.
func NewDefault() *Manager {
	cfg := model.DefaultConfig()
	return NewManager(model.DefaultPrivacySettings(), NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout))
}

// Settings returns the current settings.
func (m *Manager) Settings() model.PrivacySettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// UpdateSettings replaces the settings. This is the only mutation path.
func (m *Manager) UpdateSettings(settings model.PrivacySettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = settings
}

// SessionID returns the current session identifier.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// DomainBlocked reports whether a domain matches the fixed deny-list.
// It is a pure check: no network access.
func DomainBlocked(domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	for _, denied := range deniedDomains {
		if domain == denied || strings.HasSuffix(domain, "."+denied) {
			return true
		}
	}
	return false
}

// CanExtract decides whether extraction from rawURL is permitted. The
// deny-list is consulted first, without touching the network; robots.txt
// is only checked when the settings ask for it. Any internal failure
// yields a denial.
func (m *Manager) CanExtract(rawURL string) model.RobotsDecision {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return model.RobotsDecision{Allowed: false, Reason: "Invalid URL"}
	}

	if DomainBlocked(parsed.Hostname()) {
		m.LogDataUsage("extraction_denied", 0, rawURL)
		return model.RobotsDecision{Allowed: false, Reason: fmt.Sprintf("Domain %s is on the deny list", parsed.Hostname())}
	}

	if m.Settings().RespectRobotsTxt && m.robots != nil {
		decision := m.robots.Check(rawURL)
		if !decision.Allowed {
			m.LogDataUsage("extraction_denied", 0, rawURL)
		}
		return decision
	}

	return model.RobotsDecision{Allowed: true, Reason: "Extraction permitted"}
}

// EnsureConsent returns the session's consent record, creating it on the
// first call. Subsequent calls are idempotent reads of the cached record.
func (m *Manager) EnsureConsent() model.ConsentRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.consent != nil {
		return *m.consent
	}
	record := model.ConsentRecord{
		Granted:   true,
		SessionID: m.session,
		Timestamp: m.now(),
	}
	m.consent = &record
	return record
}

// HasConsent reports whether consent was granted this session, without
// granting it.
func (m *Manager) HasConsent() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.settings.ExplicitConsentRequired {
		return true
	}
	return m.consent != nil && m.consent.Granted
}

// LogDataUsage appends a usage log entry, enforcing the trim bound.
func (m *Manager) LogDataUsage(action string, dataSize int, rawURL string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.usageLog = append(m.usageLog, model.DataUsageLogEntry{
		Action:    action,
		DataSize:  dataSize,
		URL:       rawURL,
		SessionID: m.session,
		Timestamp: m.now(),
	})
	if len(m.usageLog) > maxLogEntries {
		m.usageLog = append([]model.DataUsageLogEntry(nil), m.usageLog[len(m.usageLog)-keepLogEntries:]...)
	}
}

// UsageLog returns a copy of the usage log.
func (m *Manager) UsageLog() []model.DataUsageLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.DataUsageLogEntry(nil), m.usageLog...)
}

// ClearSessionData empties the usage log.
func (m *Manager) ClearSessionData() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usageLog = nil
}

// Reset clears all session state: consent, usage log, and session
// identity. The next extraction starts a fresh session.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.consent = nil
	m.usageLog = nil
	m.session = newSessionID()
}

// BuildAttribution assembles the citation for an extraction. An empty
// title gets a placeholder so the attribution line is never blank.
func (m *Manager) BuildAttribution(rawURL, title string) model.Attribution {
	domain := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		domain = parsed.Hostname()
	}
	if strings.TrimSpace(title) == "" {
		title = "Untitled page"
	}

	extractedAt := m.now()
	return model.Attribution{
		SourceURL:   rawURL,
		Title:       title,
		Domain:      domain,
		ExtractedAt: extractedAt,
		Attribution: fmt.Sprintf("Source: %q, %s (extracted %s)", title, domain, extractedAt.Format("2006-01-02")),
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// Fall back to a time-derived ID; uniqueness per process is enough.
		return fmt.Sprintf("session-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
