package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/flowcrm/flowcrm-go/internal/model"
	"github.com/flowcrm/flowcrm-go/internal/store"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username or email already exists")
)

// Users handles user persistence. Users are append-only: accounts are
// never updated or deleted through this repository.
type Users struct {
	store *store.Store
	now   func() time.Time
	newID func() string
}

// NewUsers creates a new Users repository.
func NewUsers(s *store.Store) *Users {
	return &Users{
		store: s,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Create assigns an id and creation time, checks username and email
// uniqueness (case-sensitive exact match) and appends the user.
func (r *Users) Create(ctx context.Context, user *model.User) error {
	users, err := store.Load[model.User](r.store, CollectionUsers)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrDuplicateUser
		}
	}

	user.ID = r.newID()
	user.CreatedAt = r.now()
	users = append(users, *user)

	return store.Save(r.store, CollectionUsers, users)
}

// GetByIdentifier retrieves a user whose username or email equals the
// given identifier.
func (r *Users) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	users, err := store.Load[model.User](r.store, CollectionUsers)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == identifier || users[i].Email == identifier {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// EnsureAdmin seeds the fixed admin account when the users collection is
// empty, so a fresh install can always log in. passwordHash must be a
// pre-hashed credential, never a plaintext password.
func (r *Users) EnsureAdmin(ctx context.Context, passwordHash string) error {
	users, err := store.Load[model.User](r.store, CollectionUsers)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	admin := model.User{
		ID:           "1",
		Username:     "admin",
		Email:        "admin@crm.com",
		PasswordHash: passwordHash,
		Name:         "Admin User",
		Role:         model.RoleAdmin,
		CreatedAt:    r.now(),
	}
	return store.Save(r.store, CollectionUsers, []model.User{admin})
}
