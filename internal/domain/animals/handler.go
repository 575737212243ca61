package animals

import (
	"encoding/json"
	"net/http"
	"time"

	"vet-clinic-records/internal/platform/apperr"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

type createAnimalRequest struct {
	Species string `json:"species" validate:"required,max=100"`
}

// animalResponse es la representación externa de una especie.
type animalResponse struct {
	ID        string    `json:"id"`
	Species   string    `json:"species"`
	CreatedAt time.Time `json:"created_at"`
}

// createAnimalHandler godoc
// @Summary Registrar especie
// @Description Agrega una especie al catálogo. Falla con 400 si la especie ya existe.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Especie"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / species exists"
// @Failure 401 {string} string "unauthorized"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "species is required", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{Species: req.Species})
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// @Summary Obtener especie
// @Tags animals
// @Produce json
// @Param animalID path string true "ID de la especie"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "wrong id"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			apperr.Write(w, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			apperr.Write(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:        a.ID,
		Species:   a.Species,
		CreatedAt: a.CreatedAt,
	}
}

// writeJSON se repite en cada módulo a propósito, igual que en pets/clients/users.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
