package model

import "time"

// Note is a free-form annotation attached to another record by type and
// id (soft reference).
type Note struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Content    string    `json:"content"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NotePatch carries the client-editable fields of a Note.
type NotePatch struct {
	EntityType *string `json:"entityType"`
	EntityID   *string `json:"entityId"`
	Content    *string `json:"content"`
}

func (n *Note) RecordID() string { return n.ID }

func (n *Note) Stamp(id, createdBy string, now time.Time) {
	n.ID = id
	n.CreatedBy = createdBy
	n.CreatedAt = now
	n.UpdatedAt = now
}

func (n *Note) Touch(now time.Time) { n.UpdatedAt = now }

func (n *Note) Apply(p NotePatch) {
	if p.EntityType != nil {
		n.EntityType = *p.EntityType
	}
	if p.EntityID != nil {
		n.EntityID = *p.EntityID
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
}
