package pets

import (
	"net/http"

	"pet-registry/internal/platform/httpx"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, v *validation.Validator, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, v, log))
		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, v, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// petRequest es el cuerpo de POST y PUT /pets. El id lo asigna el sistema.
type petRequest struct {
	ID     *int64  `json:"id" validate:"isdefault"`
	Name   *string `json:"name" validate:"required,notblank,min=3,max=50"`
	UserID *int64  `json:"userId" validate:"required"`
}

// PetResponse es la representación pública de una mascota.
type PetResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"userId"`
}

func ToResponse(p Pet) PetResponse {
	return PetResponse{ID: p.ID, Name: p.Name, UserID: p.UserID}
}

func decodePet(r *http.Request, v *validation.Validator) (petRequest, error) {
	var req petRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return req, err
	}
	return req, v.Struct(req)
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota para un usuario existente y la agrega a su lista de mascotas.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petRequest true "Mascota; id debe venir vacío"
// @Success 201 {object} PetResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "owner not found"
// @Router /pets [post]
func createPetHandler(svc *Service, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodePet(r, v)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		logger.FromContext(r.Context(), log).Info("create pet", logger.Fields{"name": *req.Name, "user_id": *req.UserID})

		p, err := svc.Create(r.Context(), CreateInput{Name: *req.Name, UserID: *req.UserID})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, ToResponse(p))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} PetResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "petID")
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		logger.FromContext(r.Context(), log).Info("get pet", logger.Fields{"pet_id": id})

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Cambia el nombre y/o reasigna el dueño. El nuevo dueño debe existir.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Nuevos datos"
// @Success 200 {object} PetResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "pet or owner not found"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "petID")
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		req, err := decodePet(r, v)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		logger.FromContext(r.Context(), log).Info("update pet", logger.Fields{"pet_id": id, "name": *req.Name, "user_id": *req.UserID})

		p, err := svc.Update(r.Context(), id, UpdateInput{Name: *req.Name, UserID: *req.UserID})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Tags pets
// @Param petID path int true "ID de la mascota"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "petID")
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		logger.FromContext(r.Context(), log).Info("delete pet", logger.Fields{"pet_id": id})

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
