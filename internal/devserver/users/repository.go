package users

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrExists   = errors.New("user already exists")
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// MemoryRepository keeps users in memory. Emails are matched
// case-insensitively.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]string),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *MemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(user.Profile.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, ErrExists
	}
	if _, ok := r.byID[user.ID]; ok {
		return nil, ErrExists
	}

	u := *user
	r.byID[u.ID] = &u
	r.byEmail[key] = u.ID

	out := u
	return &out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[emailKey(email)]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Update replaces the stored record. The email index is not touched; callers
// never change a user's email.
func (r *MemoryRepository) Update(_ context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; !ok {
		return ErrNotFound
	}
	u := *user
	r.byID[u.ID] = &u
	return nil
}
