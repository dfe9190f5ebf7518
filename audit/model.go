// audit/model.go
package audit

import "time"

// AuditRecord is one append-only entry in the access audit log. Records are
// never mutated after creation.
type AuditRecord struct {
	EventID    string    `json:"event_id"`
	SubjectID  string    `json:"subject_id"`
	ResourceID string    `json:"resource_id"`
	Decision   string    `json:"decision"`
	PolicyID   string    `json:"policy_id"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	RiskScore  float64   `json:"risk_score"`
}
