package clients

import (
	"encoding/json"
	"net/http"
	"time"

	"vet-clinic-records/internal/platform/apperr"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Get("/", listClientsHandler(svc))
		cr.Post("/", createClientHandler(svc))
		cr.Get("/{clientID}", getClientHandler(svc))
		cr.Delete("/{clientID}", deleteClientHandler(svc))
	})
}

// createClientRequest: name y surname se validan en el service (400 si faltan).
type createClientRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"` // opcional
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	UserID    *string   `json:"user_id"` // null si no está vinculado
	CreatedAt time.Time `json:"created_at"`
}

// createClientHandler godoc
// @Summary Crear cliente
// @Description Crea la ficha de un cliente. Si `username` coincide con una cuenta existente, queda vinculada; si no, el cliente queda sin vincular.
// @Tags clients
// @Accept json
// @Produce json
// @Param payload body createClientRequest true "Datos del cliente"
// @Success 201 {object} clientResponse
// @Failure 400 {string} string "invalid json / name and surname should not be null"
// @Failure 401 {string} string "unauthorized"
// @Router /clients [post]
func createClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Name:     req.Name,
			Surname:  req.Surname,
			Username: req.Username,
		})
		if err != nil {
			apperr.Write(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toClientResponse(c))
	}
}

func getClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			apperr.Write(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClientResponse(c))
	}
}

func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			apperr.Write(w, err)
			return
		}

		out := make([]clientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClientResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deleteClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "clientID")); err != nil {
			apperr.Write(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toClientResponse(c Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Surname:   c.Surname,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
