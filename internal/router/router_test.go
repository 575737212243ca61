package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vet-clinic-records/internal/adapters/password"
	"vet-clinic-records/internal/router"
)

type principal struct {
	user  string
	roles string
}

var (
	admin = principal{user: "root", roles: "ROLE_ADMIN"}
	vet   = principal{user: "house", roles: "ROLE_VET"}
	alice = principal{user: "Alice", roles: "ROLE_CLIENT"} // username guardado en minúsculas
	bob   = principal{user: "bob", roles: "ROLE_CLIENT"}
	anon  = principal{}
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier:    nil,
		PasswordEncoder: password.NewBcryptEncoder(4),
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_ClientOwnership(t *testing.T) {
	ts := newServer(t)

	// 1) Catálogo y cuentas
	dogID := createOK(t, ts.URL, "/animals", admin, map[string]any{"species": "dog"})
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", admin, map[string]any{"species": "dog"})
		if st != http.StatusBadRequest || strings.TrimSpace(string(body)) != "species exists" {
			t.Fatalf("expected 400 species exists, got %d body=%s", st, string(body))
		}
	}
	createOK(t, ts.URL, "/users", admin, map[string]any{"username": "alice", "password": "pw", "role": "CLIENT"})
	createOK(t, ts.URL, "/users", admin, map[string]any{"username": "bob", "password": "pw", "role": "ROLE_CLIENT"})

	// 2) Fichas de cliente
	aliceClient := createOK(t, ts.URL, "/clients", vet, map[string]any{"name": "Alice", "surname": "Liddell", "username": "alice"})
	bobClient := createOK(t, ts.URL, "/clients", vet, map[string]any{"name": "Bob", "surname": "Builder", "username": "bob"})
	{
		st, body := doReq(t, ts.URL, "POST", "/clients", vet, map[string]any{"name": "Walk", "surname": "In", "username": "ghost"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 unlinked client, got %d body=%s", st, string(body))
		}
		var resp struct {
			UserID *string `json:"user_id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.UserID != nil {
			t.Fatalf("expected user_id null for unknown username, got %q", *resp.UserID)
		}
	}

	// 3) Staff registra una mascota por cliente
	alicePet := createOK(t, ts.URL, "/pets", vet, petPayload("Dinah", dogID, aliceClient))
	bobPet := createOK(t, ts.URL, "/pets", vet, petPayload("Scoop", dogID, bobClient))

	// 4) Alice solo ve la suya (username sin distinguir mayúsculas)
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", alice, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
		}
		ids := petIDs(t, body)
		if len(ids) != 1 || ids[0] != alicePet {
			t.Fatalf("expected only %s, got %v", alicePet, ids)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", vet, nil)
		if st != http.StatusOK || len(petIDs(t, body)) != 2 {
			t.Fatalf("expected staff to see 2 pets, got %d body=%s", st, string(body))
		}
	}

	// 5) Mascota ajena y mascota inexistente responden igual
	stDenied, bodyDenied := doReq(t, ts.URL, "GET", "/pets/"+bobPet, alice, nil)
	stMissing, bodyMissing := doReq(t, ts.URL, "GET", "/pets/does-not-exist", alice, nil)
	if stDenied != http.StatusNotFound || stMissing != http.StatusNotFound {
		t.Fatalf("expected 404/404, got %d/%d", stDenied, stMissing)
	}
	if string(bodyDenied) != string(bodyMissing) {
		t.Fatalf("denied and missing bodies differ: %q vs %q", bodyDenied, bodyMissing)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/pets/"+alicePet, alice, nil); st != http.StatusOK {
		t.Fatalf("expected 200 own pet, got %d", st)
	}

	// 6) Alta por un CLIENT
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", alice, petPayload("Sneaky", dogID, bobClient))
		if st != http.StatusNotFound || strings.TrimSpace(string(body)) != "user don't have access to this pet" {
			t.Fatalf("expected 404 access denied, got %d body=%s", st, string(body))
		}
	}
	createOK(t, ts.URL, "/pets", alice, petPayload("Kitty", dogID, aliceClient))

	// 7) Validaciones
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", vet, petPayload("", dogID, aliceClient))
		if st != http.StatusBadRequest || strings.TrimSpace(string(body)) != "name cannot be null" {
			t.Fatalf("expected 400 name cannot be null, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", vet, petPayload("Rex", "nope", aliceClient))
		if st != http.StatusBadRequest || strings.TrimSpace(string(body)) != "wrong animal id" {
			t.Fatalf("expected 400 wrong animal id, got %d body=%s", st, string(body))
		}
	}

	// 8) Bob sigue viendo solo la suya
	{
		_, body := doReq(t, ts.URL, "GET", "/pets", bob, nil)
		ids := petIDs(t, body)
		if len(ids) != 1 || ids[0] != bobPet {
			t.Fatalf("expected only %s for bob, got %v", bobPet, ids)
		}
	}

	// 9) Delete dos veces
	if st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+bobPet, vet, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+bobPet, vet, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 second delete, got %d", st)
	}
}

func TestHTTP_RequiresPrincipal(t *testing.T) {
	ts := newServer(t)

	for _, path := range []string{"/pets", "/animals", "/users", "/clients"} {
		if st, _ := doReq(t, ts.URL, "GET", path, anon, nil); st != http.StatusUnauthorized {
			t.Fatalf("expected 401 on %s without principal, got %d", path, st)
		}
	}

	if st, body := doReq(t, ts.URL, "GET", "/health", anon, nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok on /health, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "GET", "/swagger/doc.json", anon, nil); st != http.StatusOK {
		t.Fatalf("expected 200 on swagger doc, got %d", st)
	}
}

func TestHTTP_UserResponseHidesPassword(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/users", admin, map[string]any{"username": "carol", "password": "secret", "role": "VET"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create user, got %d body=%s", st, string(body))
	}
	if bytes.Contains(body, []byte("secret")) || bytes.Contains(body, []byte("password")) {
		t.Fatalf("user response leaks password: %s", string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/users", admin, map[string]any{"username": "carol", "password": "x", "role": "VET"})
	if st != http.StatusBadRequest || strings.TrimSpace(string(body)) != "username exists" {
		t.Fatalf("expected 400 username exists, got %d body=%s", st, string(body))
	}
}

func petPayload(name, animalID, clientID string) map[string]any {
	return map[string]any{
		"name":       name,
		"birth_date": "2021-03-14",
		"animal_id":  animalID,
		"client_id":  clientID,
	}
}

func petIDs(t *testing.T, body []byte) []string {
	t.Helper()

	var items []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("decode pets: %v body=%s", err, string(body))
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func createOK(t *testing.T, baseURL, path string, p principal, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, p, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, p principal, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if p.user != "" {
		req.Header.Set("X-Debug-User", p.user)
		req.Header.Set("X-Debug-Roles", p.roles)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
