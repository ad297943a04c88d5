package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"pet-registry/internal/apperr"
	"pet-registry/internal/domain/users"
)

// userRepo copia PetIDs al entrar y al salir: nadie fuera del repo comparte
// el slice guardado.
type userRepo struct {
	mu   sync.RWMutex
	byID map[int64]users.User
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID: make(map[int64]users.User),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID <= 0 {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	r.byID[u.ID] = clone(u)
	return nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID]; !exists {
		return apperr.ErrNotFound
	}
	r.byID[u.ID] = clone(u)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return clone(u), nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func clone(u users.User) users.User {
	u.PetIDs = slices.Clone(u.PetIDs)
	if u.PetIDs == nil {
		u.PetIDs = []int64{}
	}
	return u
}
