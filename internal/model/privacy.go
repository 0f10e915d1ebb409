package model

import "time"

// PrivacySettings configures the privacy manager. Constructed once at
// manager creation and mutated only through an explicit update.
type PrivacySettings struct {
	RespectRobotsTxt        bool `json:"respect_robots_txt" yaml:"respect_robots_txt"`
	ExplicitConsentRequired bool `json:"explicit_consent_required" yaml:"explicit_consent_required"`
	SessionOnlyStorage      bool `json:"session_only_storage" yaml:"session_only_storage"`
	IncludeAttribution      bool `json:"include_attribution" yaml:"include_attribution"`
	MaxContentSize          int  `json:"max_content_size" yaml:"max_content_size"`
	DataRetentionHours      int  `json:"data_retention_hours" yaml:"data_retention_hours"`
}

// DefaultPrivacySettings returns the conservative defaults: robots respected,
// consent required, session-only storage, attribution on.
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		RespectRobotsTxt:        true,
		ExplicitConsentRequired: true,
		SessionOnlyStorage:      true,
		IncludeAttribution:      true,
		MaxContentSize:          50000,
		DataRetentionHours:      24,
	}
}

// ConsentRecord captures one consent grant for a session.
type ConsentRecord struct {
	Granted   bool      `json:"granted"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

// DataUsageLogEntry records one privacy-relevant action.
type DataUsageLogEntry struct {
	Action    string    `json:"action"`
	DataSize  int       `json:"data_size"`
	URL       string    `json:"url,omitempty"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

// RobotsDecision is the outcome of a robots.txt check. Computed per
// extraction attempt and never persisted.
type RobotsDecision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}
