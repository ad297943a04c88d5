package pets

import "context"

// Repository guarda mascotas por id. GetByID, Update y Delete devuelven
// apperr.ErrNotFound si el id no existe.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id int64) (Pet, error)
	Delete(ctx context.Context, id int64) error
}

// IDAllocator entrega ids crecientes, uno por tipo de entidad.
type IDAllocator interface {
	Next() int64
}
