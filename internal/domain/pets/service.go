package pets

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pet-registry/internal/apperr"
)

type Service struct {
	repo   Repository
	ids    IDAllocator
	owners OwnerDirectory

	// guard es compartido con users.Service: cada operación de escritura
	// lo toma completo para que nadie vea una mascota sin su back-reference.
	guard *sync.RWMutex
}

func NewService(repo Repository, ids IDAllocator, guard *sync.RWMutex) *Service {
	return &Service{
		repo:  repo,
		ids:   ids,
		guard: guard,
	}
}

type CreateInput struct {
	Name   string
	UserID int64
}

type UpdateInput struct {
	Name   string
	UserID int64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	// El dueño se valida antes de pedir id: un fallo no deja registro huérfano.
	if !s.owners.Exists(ctx, in.UserID) {
		return Pet{}, apperr.NotFound(apperr.EntityOwner, in.UserID)
	}

	p := Pet{
		ID:   s.ids.Next(),
		Name: in.Name,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, fmt.Errorf("store pet: %w", err)
	}

	if err := s.owners.LinkPet(ctx, in.UserID, &p); err != nil {
		_ = s.repo.Delete(ctx, p.ID)
		return Pet{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, fmt.Errorf("store pet owner: %w", err)
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	return s.Lookup(ctx, id)
}

// Lookup es GetByID sin el guard, para quien ya lo tiene tomado.
func (s *Service) Lookup(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Pet{}, apperr.NotFound(apperr.EntityPet, id)
		}
		return Pet{}, err
	}
	return p, nil
}

// Update cambia nombre y/o dueño. Reasignar al mismo dueño es un no-op válido.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	p, err := s.Lookup(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	// Nuevo dueño primero: si no existe, la mascota queda intacta.
	if !s.owners.Exists(ctx, in.UserID) {
		return Pet{}, apperr.NotFound(apperr.EntityOwner, in.UserID)
	}

	p.Name = in.Name
	if err := s.detachFromOwner(ctx, &p); err != nil {
		return Pet{}, err
	}
	if err := s.owners.LinkPet(ctx, in.UserID, &p); err != nil {
		return Pet{}, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, fmt.Errorf("store pet: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	p, err := s.Lookup(ctx, id)
	if err != nil {
		return err
	}
	if err := s.detachFromOwner(ctx, &p); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id int64) bool {
	_, err := s.repo.GetByID(ctx, id)
	return err == nil
}

// Purge borra la mascota sin tocar la lista del dueño.
// Lo usa el borrado en cascada de users, que ya tiene el guard tomado.
func (s *Service) Purge(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound(apperr.EntityPet, id)
		}
		return err
	}
	return nil
}
