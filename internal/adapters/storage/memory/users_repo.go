package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"petcare/internal/domain/users"
)

type usersRepo struct {
	mu      sync.RWMutex
	byEmail map[string]users.User
}

// NewUsersRepo sirve para dev sin Mongo y para los tests de authd.
func NewUsersRepo() users.Repository {
	return &usersRepo{
		byEmail: make(map[string]users.User),
	}
}

func (r *usersRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.Email) == "" {
		return errors.New("user email required")
	}
	if _, exists := r.byEmail[u.Email]; exists {
		return users.ErrEmailTaken
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *usersRepo) FindByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}
