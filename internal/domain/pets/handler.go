package pets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/apperr"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Staff ve todas; rol CLIENT solo las de sus clients vinculados.
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	AnimalID  string `json:"animal_id"`
	ClientID  string `json:"client_id"`
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate string    `json:"birth_date"`
	AnimalID  string    `json:"animal_id"`
	ClientID  string    `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota para un cliente. Un usuario con rol CLIENT solo puede crearla para el cliente vinculado a su cuenta; si no, responde 404. Autenticación: `X-Debug-User` + `X-Debug-Roles` (dev) o `Authorization: Bearer <token>`.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User header string false "Solo en modo dev, username"
// @Param X-Debug-Roles header string false "Solo en modo dev, roles CSV (ej: ROLE_CLIENT)"
// @Param Authorization header string false "Bearer token"
// @Param payload body createPetRequest true "Datos de la mascota; birth_date en formato YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / name cannot be null / wrong animal id / wrong client id"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "user don't have access to this pet"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok || p.IsAnonymous() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// birth_date vacío llega como nil y el service responde "birth date cannot be null"
		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse(dateLayout, strings.TrimSpace(req.BirthDate))
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		pet, err := svc.Create(r.Context(), p, CreateInput{
			Name:      req.Name,
			BirthDate: bd,
			AnimalID:  req.AnimalID,
			ClientID:  req.ClientID,
		})
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(pet))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas visibles
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok || p.IsAnonymous() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListAll(r.Context(), p)
		if err != nil {
			apperr.Write(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, pet := range items {
			out = append(out, toPetResponse(pet))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Description 404 tanto si no existe como si el usuario no tiene acceso.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "wrong id"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok || p.IsAnonymous() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		pet, err := svc.GetByID(r.Context(), p, chi.URLParam(r, "petID"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(pet))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			apperr.Write(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: p.BirthDate.Format(dateLayout),
		AnimalID:  p.AnimalID,
		ClientID:  p.ClientID,
		CreatedAt: p.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
