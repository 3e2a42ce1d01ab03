package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/flowcrm/flowcrm-go/internal/model"
	"github.com/flowcrm/flowcrm-go/internal/store"
)

var ErrRecordNotFound = errors.New("record not found")

// Collection names, one JSON array file each.
const (
	CollectionUsers      = "users"
	CollectionContacts   = "contacts"
	CollectionCompanies  = "companies"
	CollectionDeals      = "deals"
	CollectionTasks      = "tasks"
	CollectionActivities = "activities"
	CollectionNotes      = "notes"
)

// Collections lists every collection the store is seeded with at boot.
func Collections() []string {
	return []string{
		CollectionUsers,
		CollectionContacts,
		CollectionCompanies,
		CollectionDeals,
		CollectionTasks,
		CollectionActivities,
		CollectionNotes,
	}
}

// Record is the contract every stored entity satisfies through its
// pointer type: identity, creation stamping, update stamping and
// field-by-field patching.
type Record[P any] interface {
	RecordID() string
	Stamp(id, createdBy string, now time.Time)
	Touch(now time.Time)
	Apply(patch P)
}

// Records provides typed CRUD over one stored collection. Every
// operation performs one bounded read and at most one bounded write of
// the full collection.
type Records[T any, P any, PT interface {
	*T
	Record[P]
}] struct {
	store      *store.Store
	collection string
	prepend    bool
	now        func() time.Time
	newID      func() string
}

// NewRecords creates a repository that appends new records to the end of
// the collection.
func NewRecords[T any, P any, PT interface {
	*T
	Record[P]
}](s *store.Store, collection string) *Records[T, P, PT] {
	return &Records[T, P, PT]{
		store:      s,
		collection: collection,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// NewLog creates a repository that prepends new records, so the newest
// record is always first. Used for the activity feed.
func NewLog[T any, P any, PT interface {
	*T
	Record[P]
}](s *store.Store, collection string) *Records[T, P, PT] {
	r := NewRecords[T, P, PT](s, collection)
	r.prepend = true
	return r
}

// List returns the full collection in stored order.
func (r *Records[T, P, PT]) List(ctx context.Context) ([]T, error) {
	return store.Load[T](r.store, r.collection)
}

// Create assigns a fresh id, stamps ownership and timestamps from the
// caller's claims, persists and returns the stored record.
func (r *Records[T, P, PT]) Create(ctx context.Context, claims model.UserClaims, item T) (T, error) {
	var zero T

	items, err := store.Load[T](r.store, r.collection)
	if err != nil {
		return zero, err
	}

	PT(&item).Stamp(r.newID(), claims.UserID, r.now())

	if r.prepend {
		items = append([]T{item}, items...)
	} else {
		items = append(items, item)
	}

	if err := store.Save(r.store, r.collection, items); err != nil {
		return zero, err
	}
	return item, nil
}

// Update applies a patch to the record with the given id, refreshes its
// updatedAt stamp and persists. Returns ErrRecordNotFound for an unknown
// id.
func (r *Records[T, P, PT]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T

	items, err := store.Load[T](r.store, r.collection)
	if err != nil {
		return zero, err
	}

	for i := range items {
		rec := PT(&items[i])
		if rec.RecordID() != id {
			continue
		}
		rec.Apply(patch)
		rec.Touch(r.now())
		if err := store.Save(r.store, r.collection, items); err != nil {
			return zero, err
		}
		return items[i], nil
	}

	return zero, ErrRecordNotFound
}

// Delete removes any record matching id. Deleting an absent id is not an
// error.
func (r *Records[T, P, PT]) Delete(ctx context.Context, id string) error {
	items, err := store.Load[T](r.store, r.collection)
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(items))
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			continue
		}
		kept = append(kept, items[i])
	}

	return store.Save(r.store, r.collection, kept)
}

// Instantiations for each entity kind.
type (
	ContactRecords  = Records[model.Contact, model.ContactPatch, *model.Contact]
	CompanyRecords  = Records[model.Company, model.CompanyPatch, *model.Company]
	DealRecords     = Records[model.Deal, model.DealPatch, *model.Deal]
	TaskRecords     = Records[model.Task, model.TaskPatch, *model.Task]
	ActivityRecords = Records[model.Activity, model.ActivityPatch, *model.Activity]
	NoteRecords     = Records[model.Note, model.NotePatch, *model.Note]
)
