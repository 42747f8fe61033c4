package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Version is the optimistic-locking counter; every successful update bumps it by one.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // Actor reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // Actor reference
	Version       int64     `json:"version"`
}

// NewAuditFields stamps a freshly created entity.
func NewAuditFields(actor string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
		Version:       1,
	}
}

// Touch records an update by actor at now. The version is bumped by the store, not here.
func (a *AuditFields) Touch(actor string, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = actor
}
