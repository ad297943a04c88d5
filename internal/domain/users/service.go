package users

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pet-registry/internal/apperr"
	"pet-registry/internal/domain/pets"
)

type Service struct {
	repo  Repository
	ids   IDAllocator
	pets  PetRegistry
	guard *sync.RWMutex
}

// NewService recibe el mismo guard que pets.Service.
func NewService(repo Repository, ids IDAllocator, petReg PetRegistry, guard *sync.RWMutex) *Service {
	return &Service{
		repo:  repo,
		ids:   ids,
		pets:  petReg,
		guard: guard,
	}
}

type CreateInput struct {
	ID    *int64 // debe venir vacío
	Name  string
	Email string
	Age   int
	Pets  int // cantidad de mascotas enviadas; debe ser 0
}

type UpdateInput struct {
	Name  string
	Email string
	Age   int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Profile, error) {
	var violations []apperr.Violation
	if in.ID != nil {
		violations = append(violations, apperr.Violation{Field: "id", Reason: "must be null"})
	}
	if in.Pets > 0 {
		violations = append(violations, apperr.Violation{Field: "pets", Reason: "list must be empty"})
	}
	if len(violations) > 0 {
		return Profile{}, apperr.Invalid(violations...)
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	u := User{
		ID:     s.ids.Next(),
		Name:   in.Name,
		Email:  in.Email,
		Age:    in.Age,
		PetIDs: []int64{},
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return Profile{}, fmt.Errorf("store user: %w", err)
	}
	return Profile{User: u, Pets: []pets.Pet{}}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Profile, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	u, err := s.get(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return s.profile(ctx, u)
}

// Update pisa name/email/age; nunca identidad ni lista de mascotas.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Profile, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	u, err := s.get(ctx, id)
	if err != nil {
		return Profile{}, err
	}

	u.Name = in.Name
	u.Email = in.Email
	u.Age = in.Age

	if err := s.repo.Update(ctx, u); err != nil {
		return Profile{}, fmt.Errorf("store user: %w", err)
	}
	return s.profile(ctx, u)
}

// Delete borra primero todas las mascotas del usuario (cascada) y después al usuario.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	u, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	for _, petID := range u.PetIDs {
		if err := s.pets.Purge(ctx, petID); err != nil {
			return fmt.Errorf("cascade delete of user %d: %w", id, err)
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id int64) bool {
	_, err := s.repo.GetByID(ctx, id)
	return err == nil
}

// LinkPet agrega la mascota a la lista del usuario y fija p.UserID.
// El caller ya confirmó que el usuario existe y tiene el guard tomado.
func (s *Service) LinkPet(ctx context.Context, userID int64, p *pets.Pet) error {
	u, err := s.get(ctx, userID)
	if err != nil {
		return err
	}

	u.PetIDs = append(u.PetIDs, p.ID)
	if err := s.repo.Update(ctx, u); err != nil {
		return fmt.Errorf("link pet %d to user %d: %w", p.ID, userID, err)
	}
	p.UserID = userID
	return nil
}

// UnlinkPet saca petID de la lista del usuario.
func (s *Service) UnlinkPet(ctx context.Context, userID, petID int64) error {
	u, err := s.get(ctx, userID)
	if err != nil {
		return err
	}

	kept := make([]int64, 0, len(u.PetIDs))
	for _, id := range u.PetIDs {
		if id != petID {
			kept = append(kept, id)
		}
	}
	u.PetIDs = kept

	if err := s.repo.Update(ctx, u); err != nil {
		return fmt.Errorf("unlink pet %d from user %d: %w", petID, userID, err)
	}
	return nil
}

func (s *Service) get(ctx context.Context, id int64) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return User{}, apperr.NotFound(apperr.EntityUser, id)
		}
		return User{}, err
	}
	return u, nil
}

func (s *Service) profile(ctx context.Context, u User) (Profile, error) {
	out := Profile{User: u, Pets: make([]pets.Pet, 0, len(u.PetIDs))}
	for _, id := range u.PetIDs {
		p, err := s.pets.Lookup(ctx, id)
		if err != nil {
			return Profile{}, fmt.Errorf("resolve pets of user %d: %w", u.ID, err)
		}
		out.Pets = append(out.Pets, p)
	}
	return out, nil
}
