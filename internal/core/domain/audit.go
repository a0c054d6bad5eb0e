package domain

import "time"

// AuditEntry is one append-only line in the audit trail.
type AuditEntry struct {
	AuditID  string    `json:"auditID"`
	Actor    string    `json:"actor"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entityID"`
	At       time.Time `json:"at"`
}
