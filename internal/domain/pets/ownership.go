package pets

import (
	"context"
	"fmt"
)

// OwnerDirectory expone lo mínimo del módulo users que necesita pets.
// Se usa para evitar ciclos de imports entre módulos (users <-> pets).
// Ninguno de estos métodos toma el guard: se llaman con el guard ya tomado.
type OwnerDirectory interface {
	Exists(ctx context.Context, userID int64) bool
	LinkPet(ctx context.Context, userID int64, p *Pet) error
	UnlinkPet(ctx context.Context, userID, petID int64) error
}

// UseOwners conecta el directorio de dueños. Se llama una vez al armar el router.
func (s *Service) UseOwners(owners OwnerDirectory) {
	s.owners = owners
}

// detachFromOwner saca la mascota de la lista del dueño y limpia p.UserID.
// El dueño siempre existe mientras la mascota exista.
func (s *Service) detachFromOwner(ctx context.Context, p *Pet) error {
	if err := s.owners.UnlinkPet(ctx, p.UserID, p.ID); err != nil {
		return fmt.Errorf("detach pet %d from owner %d: %w", p.ID, p.UserID, err)
	}
	p.UserID = 0
	return nil
}
