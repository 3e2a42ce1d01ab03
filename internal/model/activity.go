package model

import "time"

// Activity is an append-only log entry in the activities collection. It
// is never updated after creation, so it carries no updatedAt. New
// activities are prepended so the feed reads newest-first.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Related     string    `json:"related"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ActivityPatch exists to satisfy the record contract; activities are
// append-only and no route exposes updates.
type ActivityPatch struct{}

func (a *Activity) RecordID() string { return a.ID }

func (a *Activity) Stamp(id, createdBy string, now time.Time) {
	a.ID = id
	a.CreatedBy = createdBy
	a.CreatedAt = now
}

func (a *Activity) Touch(time.Time) {}

func (a *Activity) Apply(ActivityPatch) {}
