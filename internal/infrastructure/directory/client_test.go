package directory_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-admin/internal/domain"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// staticToken fuente de token fija para los tests.
type staticToken string

func (t staticToken) Token() string { return string(t) }

// newTestClient levanta un servidor fake y construye el facade apuntándole.
func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *directory.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return directory.NewClient(directory.Config{BaseURL: srv.URL}, staticToken(token))
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de listados — array desnudo y envelope {results}
// ──────────────────────────────────────────────────────────────────────────────

func TestListUsers_ArrayDesnudo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/", r.URL.Path, "el endpoint remoto lleva slash final")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "full_name": "Ana García"}, {"id": 2, "full_name": "Luis Pérez"}]`))
	}, "")

	users, err := client.ListUsers(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ana García", users[0].FullName)
}

func TestListUsers_EnvelopeResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 1, "results": [{"id": 7, "full_name": "Ana García"}]}`))
	}, "")

	users, err := client.ListUsers(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 7, users[0].ID)
}

func TestListUsers_FormaDesconocidaEsErrorDeTransporte(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`)) // ni array ni results
	}, "")

	_, err := client.ListUsers(context.Background(), nil)
	var tErr *domain.TransportError
	assert.ErrorAs(t, err, &tErr)
}

func TestListUsers_FiltroViajaEnQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		w.Write([]byte(`[]`))
	}, "")

	_, err := client.ListUsers(context.Background(), map[string]string{"status": "active"})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización — el token de sesión viaja como Bearer
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_AdjuntaBearerCuandoHayToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}, "tok-abc")

	_, err := client.ListUsers(context.Background(), nil)
	require.NoError(t, err)
}

func TestClient_SinTokenNoHayHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"),
			"sin sesión no debe viajar ningún Authorization")
		w.Write([]byte(`[]`))
	}, "")

	_, err := client.ListUsers(context.Background(), nil)
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Las tres formas de cuerpo de error del servicio
// ──────────────────────────────────────────────────────────────────────────────

// Forma 1: {"error": "..."} → APIError con el mensaje.
func TestErrores_FormaError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Invalid credentials"}`))
	}, "")

	_, err := client.Login(context.Background(), directory.Credentials{Username: "x", Password: "y"})
	var aErr *domain.APIError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, http.StatusUnauthorized, aErr.Status)
	assert.Equal(t, "Invalid credentials", aErr.Message)
}

// Forma 2: {"detail": "..."} → APIError con el mensaje.
func TestErrores_FormaDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Not found."}`))
	}, "")

	_, err := client.GetUser(context.Background(), 99)
	var aErr *domain.APIError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, http.StatusNotFound, aErr.Status)
	assert.Equal(t, "Not found.", aErr.Message)
}

// Forma 3: mapa campo→[mensajes] → ValidationError.
func TestErrores_FormaValidacionPorCampo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"email": ["user with this email already exists."], "first_name": ["This field is required."]}`))
	}, "")

	_, err := client.CreateUser(context.Background(), map[string]any{"email": "dup@acme.co"})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "user with this email already exists.", vErr.FirstMessage("email"))
	assert.Equal(t, "This field is required.", vErr.FirstMessage("first_name"))
}

// Cuerpo de error ilegible → APIError genérico con el status.
func TestErrores_CuerpoIlegible(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>panic</html>`))
	}, "")

	_, err := client.GetUser(context.Background(), 1)
	var aErr *domain.APIError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, http.StatusInternalServerError, aErr.Status)
}

// Servicio inalcanzable → TransportError, nunca APIError.
func TestErrores_ServicioInalcanzable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // puerto cerrado de inmediato
	client := directory.NewClient(directory.Config{BaseURL: srv.URL}, nil)

	_, err := client.ListUsers(context.Background(), nil)
	var tErr *domain.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "ListUsers", tErr.Op)
}

// ──────────────────────────────────────────────────────────────────────────────
// Payloads salientes
// ──────────────────────────────────────────────────────────────────────────────

// El payload limpio viaja tal cual: null explícito incluido.
func TestCreateUser_NullExplicitoViajaEnElCuerpo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "department")
		assert.Equal(t, "null", string(body["department"]))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 5, "first_name": "Ana"}`))
	}, "tok")

	created, err := client.CreateUser(context.Background(), map[string]any{
		"first_name": "Ana",
		"department": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
}

func TestChangeUserStatus_EndpointYCuerpo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/3/change_status/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "on_leave", body["status"])
		w.Write([]byte(`{"id": 3, "status": "on_leave"}`))
	}, "tok")

	updated, err := client.ChangeUserStatus(context.Background(), 3, "on_leave")
	require.NoError(t, err)
	assert.Equal(t, "on_leave", updated.Status)
}

func TestSetUserPassword_EndpointYCuerpo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admins/4/change-password/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "nueva-clave", body["new_password"])
		w.Write([]byte(`{"success": true}`))
	}, "tok")

	require.NoError(t, client.SetUserPassword(context.Background(), 4, "nueva-clave"))
}
