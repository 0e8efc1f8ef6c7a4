package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-admin/internal/application/guard"
	"github.com/jhoicas/directorio-admin/internal/application/session"
	"github.com/jhoicas/directorio-admin/internal/domain/entity"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
	apphttp "github.com/jhoicas/directorio-admin/internal/interfaces/http"
	"github.com/jhoicas/directorio-admin/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testIssuer     = "directorio-admin-test"
	testCookieName = "directorio_session"
	testExpMin     = 60
)

// fakeAuthAPI facade remoto que siempre acepta el login con el principal dado.
type fakeAuthAPI struct {
	principal entity.Principal
}

func (f *fakeAuthAPI) Login(ctx context.Context, creds directory.Credentials) (*directory.LoginResult, error) {
	return &directory.LoginResult{Success: true, Token: "tok-remoto", User: f.principal}, nil
}
func (f *fakeAuthAPI) Logout(ctx context.Context) error { return nil }
func (f *fakeAuthAPI) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return nil
}

// loggedInSession crea una sesión activa con el principal dado.
func loggedInSession(t *testing.T, p entity.Principal) *session.Store {
	t.Helper()
	sess := session.New()
	sess.Bind(&fakeAuthAPI{principal: p})
	_, err := sess.Login(context.Background(), p.Username, "secreto")
	require.NoError(t, err)
	return sess
}

// cookieFor genera la cookie de sesión firmada para el principal.
func cookieFor(t *testing.T, p entity.Principal) string {
	t.Helper()
	signed, err := token.Generate(testSecret, p, testIssuer, testExpMin)
	require.NoError(t, err)
	return signed
}

// buildGuardedApp construye una app mínima con el árbol de guards real:
// /admin tras AdminOnly y /user tras UserOnly, igual que el router.
func buildGuardedApp(sess *session.Store) *fiber.App {
	app := fiber.New()
	principal := apphttp.PrincipalMiddleware(testCookieName, testSecret, sess)

	app.Get("/admin/dashboard", principal, apphttp.Guard(guard.AdminOnly), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/user/dashboard", principal, apphttp.Guard(guard.UserOnly), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

// doGet lanza un GET con cookie de sesión opcional.
func doGet(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func adminP() entity.Principal {
	return entity.Principal{ID: 1, Username: "admin", Role: entity.RoleAdmin}
}

func userP() entity.Principal {
	return entity.Principal{ID: 3, Username: "empleado", Role: entity.RoleUser}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de guards sobre el árbol de rutas
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: admin con sesión activa accede a su dashboard.
func TestGuard_AdminAccedeDashboardAdmin(t *testing.T) {
	p := adminP()
	app := buildGuardedApp(loggedInSession(t, p))

	resp := doGet(t, app, "/admin/dashboard", cookieFor(t, p))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: usuario normal en ruta admin → 302 hacia su propio dashboard.
func TestGuard_UsuarioRedirigidoDesdeRutaAdmin(t *testing.T) {
	p := userP()
	app := buildGuardedApp(loggedInSession(t, p))

	resp := doGet(t, app, "/admin/dashboard", cookieFor(t, p))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, guard.PathUserHome, resp.Header.Get("Location"),
		"usuario normal va a su home, no al login")
}

// Caso 3: admin en ruta de usuario → 302 hacia el dashboard admin.
func TestGuard_AdminRedirigidoDesdeRutaUsuario(t *testing.T) {
	p := adminP()
	app := buildGuardedApp(loggedInSession(t, p))

	resp := doGet(t, app, "/user/dashboard", cookieFor(t, p))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, guard.PathAdminHome, resp.Header.Get("Location"))
}

// Caso 4: sin cookie → 302 al login.
func TestGuard_SinCookieRedirigeALogin(t *testing.T) {
	app := buildGuardedApp(session.New())

	resp := doGet(t, app, "/admin/dashboard", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, guard.PathLogin, resp.Header.Get("Location"))
}

// Caso 5: cookie firmada válida pero sesión ya cerrada (logout) → el
// principal no cuenta y el guard redirige al login.
func TestGuard_CookieValidaConSesionCerrada(t *testing.T) {
	p := adminP()
	sess := loggedInSession(t, p)
	cookie := cookieFor(t, p)
	require.NoError(t, sess.Logout(context.Background()))

	app := buildGuardedApp(sess)
	resp := doGet(t, app, "/admin/dashboard", cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, guard.PathLogin, resp.Header.Get("Location"),
		"una cookie de sesión cerrada no resucita el principal")
}

// Caso 6: cookie firmada con otro secret → inválida, 302 al login.
func TestGuard_CookieConFirmaIncorrecta(t *testing.T) {
	p := adminP()
	signed, err := token.Generate("otro-secret-completamente-distinto", p, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildGuardedApp(loggedInSession(t, p))
	resp := doGet(t, app, "/admin/dashboard", signed)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, guard.PathLogin, resp.Header.Get("Location"))
}

// Caso 7: staff sin rol admin cuenta como admin para el guard.
func TestGuard_StaffAccedeComoAdmin(t *testing.T) {
	p := entity.Principal{ID: 5, Username: "staff", Role: entity.RoleUser, IsStaff: true}
	app := buildGuardedApp(loggedInSession(t, p))

	resp := doGet(t, app, "/admin/dashboard", cookieFor(t, p))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 8: cookie de un principal distinto al de la sesión activa → no cuenta.
func TestGuard_CookieDeOtroPrincipal(t *testing.T) {
	app := buildGuardedApp(loggedInSession(t, adminP()))

	// Cookie firmada para el usuario 3, pero la sesión activa es del 1.
	resp := doGet(t, app, "/admin/dashboard", cookieFor(t, userP()))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, guard.PathLogin, resp.Header.Get("Location"))
}
