// Package apperr define los errores de dominio compartidos por users y pets.
// Solo internal/platform/httpx los traduce a respuestas HTTP.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// Entity identifica el tipo de registro que no se encontró.
type Entity string

const (
	EntityUser  Entity = "User"
	EntityPet   Entity = "Pet"
	EntityOwner Entity = "Owner" // un User referenciado desde una Pet
)

// NotFoundError es el fallo "no existe" parametrizado por entidad e id.
type NotFoundError struct {
	Entity Entity
	ID     int64
}

func NotFound(entity Entity, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Violation es una regla de campo que no se cumplió.
type Violation struct {
	Field  string
	Reason string
}

func (v Violation) String() string { return v.Field + ": " + v.Reason }

// ValidationError agrupa todas las violaciones de un payload.
type ValidationError struct {
	Violations []Violation
}

func Invalid(violations ...Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
