package users_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"pet-registry/internal/adapters/storage/memory"
	"pet-registry/internal/apperr"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices() (*users.Service, *pets.Service) {
	var guard sync.RWMutex
	petsSvc := pets.NewService(memory.NewPetRepo(), memory.NewSequence(), &guard)
	usersSvc := users.NewService(memory.NewUserRepo(), memory.NewSequence(), petsSvc, &guard)
	petsSvc.UseOwners(usersSvc)
	return usersSvc, petsSvc
}

func createOwner(t *testing.T, svc *users.Service, name string) users.Profile {
	t.Helper()

	u, err := svc.Create(context.Background(), users.CreateInput{
		Name:  name,
		Email: name + "@" + name + ".com",
		Age:   24,
	})
	require.NoError(t, err)
	return u
}

func petIDs(p users.Profile) []int64 {
	out := make([]int64, 0, len(p.Pets))
	for _, pet := range p.Pets {
		out = append(out, pet.ID)
	}
	return out
}

func TestCreate_AssignsFreshIDAndEmptyPets(t *testing.T) {
	svc, _ := newServices()

	first := createOwner(t, svc, "owner")
	second := createOwner(t, svc, "other")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Empty(t, first.Pets)
	assert.NotNil(t, first.Pets)
	assert.Equal(t, "owner@owner.com", first.Email)
}

func TestCreate_RejectsIDAndPets(t *testing.T) {
	svc, _ := newServices()
	id := int64(5)

	_, err := svc.Create(context.Background(), users.CreateInput{ID: &id, Name: "owner", Email: "o@o.com", Age: 1, Pets: 2})

	require.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Equal(t, "id: must be null, pets: list must be empty", err.Error())
	assert.False(t, svc.Exists(context.Background(), 1), "nothing stored")
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newServices()

	_, err := svc.GetByID(context.Background(), 42)

	require.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, "User with id 42 not found", err.Error())
}

func TestUpdate_OverwritesFieldsKeepsPets(t *testing.T) {
	usersSvc, petsSvc := newServices()
	ctx := context.Background()

	owner := createOwner(t, usersSvc, "owner")
	pet, err := petsSvc.Create(ctx, pets.CreateInput{Name: "Milo", UserID: owner.ID})
	require.NoError(t, err)

	updated, err := usersSvc.Update(ctx, owner.ID, users.UpdateInput{Name: "renamed", Email: "new@mail.com", Age: 30})
	require.NoError(t, err)

	assert.Equal(t, owner.ID, updated.ID)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "new@mail.com", updated.Email)
	assert.Equal(t, 30, updated.Age)
	assert.Equal(t, []int64{pet.ID}, petIDs(updated))

	_, err = usersSvc.Update(ctx, 99, users.UpdateInput{Name: "x", Email: "x@x.com"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestCreatePet_BackReference(t *testing.T) {
	usersSvc, petsSvc := newServices()
	ctx := context.Background()

	owner := createOwner(t, usersSvc, "owner")
	pet, err := petsSvc.Create(ctx, pets.CreateInput{Name: "petToCreate", UserID: owner.ID})
	require.NoError(t, err)

	got, err := usersSvc.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Pets, 1)
	assert.Equal(t, pets.Pet{ID: pet.ID, Name: "petToCreate", UserID: owner.ID}, got.Pets[0])

	stored, err := petsSvc.GetByID(ctx, pet.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, stored.UserID)
}

func TestGetByID_ResolvesRenamedPets(t *testing.T) {
	usersSvc, petsSvc := newServices()
	ctx := context.Background()

	owner := createOwner(t, usersSvc, "owner")
	pet, err := petsSvc.Create(ctx, pets.CreateInput{Name: "Milo", UserID: owner.ID})
	require.NoError(t, err)
	_, err = petsSvc.Update(ctx, pet.ID, pets.UpdateInput{Name: "Max", UserID: owner.ID})
	require.NoError(t, err)

	got, err := usersSvc.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Pets, 1)
	assert.Equal(t, "Max", got.Pets[0].Name)
}

func TestDelete_CascadesToPets(t *testing.T) {
	usersSvc, petsSvc := newServices()
	ctx := context.Background()

	owner := createOwner(t, usersSvc, "owner")
	other := createOwner(t, usersSvc, "other")

	var owned []int64
	for i := 0; i < 3; i++ {
		p, err := petsSvc.Create(ctx, pets.CreateInput{Name: fmt.Sprintf("pet-%d", i), UserID: owner.ID})
		require.NoError(t, err)
		owned = append(owned, p.ID)
	}
	kept, err := petsSvc.Create(ctx, pets.CreateInput{Name: "survivor", UserID: other.ID})
	require.NoError(t, err)

	require.NoError(t, usersSvc.Delete(ctx, owner.ID))

	assert.False(t, usersSvc.Exists(ctx, owner.ID))
	for _, id := range owned {
		assert.False(t, petsSvc.Exists(ctx, id), "pet %d should be gone", id)
	}
	assert.True(t, petsSvc.Exists(ctx, kept.ID))

	err = usersSvc.Delete(ctx, owner.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestDeletePet_RemovesFromOwner(t *testing.T) {
	usersSvc, petsSvc := newServices()
	ctx := context.Background()

	owner := createOwner(t, usersSvc, "owner")
	a, _ := petsSvc.Create(ctx, pets.CreateInput{Name: "aaa", UserID: owner.ID})
	b, _ := petsSvc.Create(ctx, pets.CreateInput{Name: "bbb", UserID: owner.ID})

	require.NoError(t, petsSvc.Delete(ctx, a.ID))

	got, err := usersSvc.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, petIDs(got))
}

func TestUpdatePet_Reassignment(t *testing.T) {
	usersSvc, petsSvc := newServices()
	ctx := context.Background()

	oldOwner := createOwner(t, usersSvc, "old")
	newOwner := createOwner(t, usersSvc, "new")
	pet, _ := petsSvc.Create(ctx, pets.CreateInput{Name: "Milo", UserID: oldOwner.ID})

	_, err := petsSvc.Update(ctx, pet.ID, pets.UpdateInput{Name: "Milo", UserID: newOwner.ID})
	require.NoError(t, err)

	gotOld, _ := usersSvc.GetByID(ctx, oldOwner.ID)
	gotNew, _ := usersSvc.GetByID(ctx, newOwner.ID)
	assert.Empty(t, gotOld.Pets)
	assert.Equal(t, []int64{pet.ID}, petIDs(gotNew))

	_, err = petsSvc.Update(ctx, pet.ID, pets.UpdateInput{Name: "Milo", UserID: 404})
	require.True(t, errors.Is(err, apperr.ErrNotFound))

	// Un fallo de reasignación no deja huérfanos.
	gotNew, _ = usersSvc.GetByID(ctx, newOwner.ID)
	assert.Equal(t, []int64{pet.ID}, petIDs(gotNew))
}

func TestLinkPet_UnknownUser(t *testing.T) {
	usersSvc, _ := newServices()
	p := pets.Pet{ID: 1, Name: "Milo"}

	err := usersSvc.LinkPet(context.Background(), 3, &p)

	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Zero(t, p.UserID)
}

// Con escrituras concurrentes, user.pets sigue siendo exactamente el conjunto
// de mascotas cuyo userId apunta al usuario.
func TestConcurrentWriters_KeepBackReferencesConsistent(t *testing.T) {
	usersSvc, petsSvc := newServices()
	ctx := context.Background()

	a := createOwner(t, usersSvc, "alpha")
	b := createOwner(t, usersSvc, "bravo")

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				p, err := petsSvc.Create(ctx, pets.CreateInput{Name: "pet", UserID: a.ID})
				if err != nil {
					t.Errorf("create: %v", err)
					return
				}
				switch i % 3 {
				case 0:
					_, err = petsSvc.Update(ctx, p.ID, pets.UpdateInput{Name: "moved", UserID: b.ID})
				case 1:
					err = petsSvc.Delete(ctx, p.ID)
				}
				if err != nil {
					t.Errorf("mutate: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	for _, owner := range []int64{a.ID, b.ID} {
		got, err := usersSvc.GetByID(ctx, owner)
		require.NoError(t, err)
		for _, p := range got.Pets {
			assert.Equal(t, owner, p.UserID)
		}
	}

	gotA, _ := usersSvc.GetByID(ctx, a.ID)
	gotB, _ := usersSvc.GetByID(ctx, b.ID)
	assert.Len(t, gotA.Pets, 8*16)
	assert.Len(t, gotB.Pets, 8*17)
}
