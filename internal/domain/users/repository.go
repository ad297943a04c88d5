package users

import (
	"context"

	"pet-registry/internal/domain/pets"
)

// Repository guarda usuarios por id. GetByID, Update y Delete devuelven
// apperr.ErrNotFound si el id no existe.
type Repository interface {
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	GetByID(ctx context.Context, id int64) (User, error)
	Delete(ctx context.Context, id int64) error
}

// IDAllocator entrega ids crecientes, uno por tipo de entidad.
type IDAllocator interface {
	Next() int64
}

// PetRegistry es lo que users necesita del módulo pets.
// Ninguno de estos métodos toma el guard compartido.
type PetRegistry interface {
	Lookup(ctx context.Context, id int64) (pets.Pet, error)
	Purge(ctx context.Context, id int64) error
}
