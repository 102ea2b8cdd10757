package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SharedResult is a snapshot of action items published under a share link
type SharedResult struct {
	ID        uuid.UUID                       `json:"id" gorm:"type:uuid;primary_key"`
	Actions   datatypes.JSONSlice[ActionItem] `json:"actions" gorm:"type:jsonb;not null"`
	CreatedAt time.Time                       `json:"created_at" gorm:"autoCreateTime"`
	ExpiresAt *time.Time                      `json:"expires_at,omitempty" gorm:"type:timestamptz;index"`
}

// TableName specifies the table name for GORM
func (SharedResult) TableName() string {
	return "shared_results"
}

// NewSharedResult creates a share snapshot. A zero ttl never expires.
func NewSharedResult(actions []ActionItem, ttl time.Duration) *SharedResult {
	now := time.Now().UTC()
	r := &SharedResult{
		ID:        uuid.New(),
		Actions:   datatypes.JSONSlice[ActionItem](actions),
		CreatedAt: now,
	}
	if ttl > 0 {
		exp := now.Add(ttl)
		r.ExpiresAt = &exp
	}
	return r
}

// IsExpired reports whether the share link is past its expiry at t
func (r *SharedResult) IsExpired(t time.Time) bool {
	return r.ExpiresAt != nil && !t.Before(*r.ExpiresAt)
}
