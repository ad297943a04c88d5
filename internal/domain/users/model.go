package users

import "pet-registry/internal/domain/pets"

// User es el registro guardado. PetIDs es la back-reference a las mascotas
// cuyo UserID apunta a este usuario; solo la modifica el Service.
type User struct {
	ID     int64
	Name   string
	Email  string
	Age    int
	PetIDs []int64
}

// Profile es un User con sus mascotas resueltas desde el store de pets.
type Profile struct {
	User
	Pets []pets.Pet
}
