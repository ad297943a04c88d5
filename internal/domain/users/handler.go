package users

import (
	"encoding/json"
	"net/http"

	"pet-registry/internal/domain/pets"
	"pet-registry/internal/platform/httpx"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, v *validation.Validator, log logger.Logger) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/", createUserHandler(svc, v, log))
		ur.Get("/{userID}", getUserHandler(svc, log))
		ur.Put("/{userID}", updateUserHandler(svc, v, log))
		ur.Delete("/{userID}", deleteUserHandler(svc, log))
	})
}

// createUserRequest es el cuerpo de POST /users. La lista de mascotas solo
// se acepta vacía: se llena al crear mascotas.
type createUserRequest struct {
	ID    *int64            `json:"id" validate:"isdefault"`
	Name  *string           `json:"name" validate:"required,notblank,min=3,max=50"`
	Email *string           `json:"email" validate:"required,email"`
	Age   *int              `json:"age" validate:"required,min=0,max=100"`
	Pets  []json.RawMessage `json:"pets" validate:"emptylist" swaggerignore:"true"`
}

// updateUserRequest es el cuerpo de PUT /users/{userID}; "pets" se ignora.
type updateUserRequest struct {
	ID    *int64  `json:"id" validate:"isdefault"`
	Name  *string `json:"name" validate:"required,notblank,min=3,max=50"`
	Email *string `json:"email" validate:"required,email"`
	Age   *int    `json:"age" validate:"required,min=0,max=100"`
}

type userResponse struct {
	ID    int64              `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Age   int                `json:"age"`
	Pets  []pets.PetResponse `json:"pets"`
}

func toUserResponse(p Profile) userResponse {
	out := userResponse{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Age:   p.Age,
		Pets:  make([]pets.PetResponse, 0, len(p.Pets)),
	}
	for _, pet := range p.Pets {
		out.Pets = append(out.Pets, pets.ToResponse(pet))
	}
	return out
}

// createUserHandler godoc
// @Summary Crear usuario
// @Description Crea un usuario sin mascotas. id y pets no se aceptan en el body.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body createUserRequest true "Usuario"
// @Success 201 {object} userResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /users [post]
func createUserHandler(svc *Service, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		if err := v.Struct(req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		logger.FromContext(r.Context(), log).Info("create user", logger.Fields{"name": *req.Name, "email": *req.Email})

		u, err := svc.Create(r.Context(), CreateInput{
			ID:    req.ID,
			Name:  *req.Name,
			Email: *req.Email,
			Age:   *req.Age,
			Pets:  len(req.Pets),
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Description Devuelve el usuario con sus mascotas.
// @Tags users
// @Produce json
// @Param userID path int true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /users/{userID} [get]
func getUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "userID")
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		logger.FromContext(r.Context(), log).Info("get user", logger.Fields{"user_id": id})

		u, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// updateUserHandler godoc
// @Summary Actualizar usuario
// @Description Reemplaza name, email y age. La lista de mascotas no se modifica.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path int true "ID del usuario"
// @Param payload body updateUserRequest true "Nuevos datos"
// @Success 200 {object} userResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /users/{userID} [put]
func updateUserHandler(svc *Service, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "userID")
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		var req updateUserRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		if err := v.Struct(req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		logger.FromContext(r.Context(), log).Info("update user", logger.Fields{"user_id": id, "name": *req.Name, "email": *req.Email})

		u, err := svc.Update(r.Context(), id, UpdateInput{
			Name:  *req.Name,
			Email: *req.Email,
			Age:   *req.Age,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// deleteUserHandler godoc
// @Summary Borrar usuario
// @Description Borra el usuario y, en cascada, todas sus mascotas.
// @Tags users
// @Param userID path int true "ID del usuario"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /users/{userID} [delete]
func deleteUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "userID")
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		logger.FromContext(r.Context(), log).Info("delete user", logger.Fields{"user_id": id})

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
