package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-admin/internal/application/session"
	"github.com/jhoicas/directorio-admin/internal/domain"
	"github.com/jhoicas/directorio-admin/internal/domain/entity"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del facade de autenticación
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuthAPI struct {
	loginFn  func(ctx context.Context, creds directory.Credentials) (*directory.LoginResult, error)
	logoutFn func(ctx context.Context) error
	changeFn func(ctx context.Context, oldPassword, newPassword string) error
}

func (f *fakeAuthAPI) Login(ctx context.Context, creds directory.Credentials) (*directory.LoginResult, error) {
	return f.loginFn(ctx, creds)
}
func (f *fakeAuthAPI) Logout(ctx context.Context) error { return f.logoutFn(ctx) }
func (f *fakeAuthAPI) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return f.changeFn(ctx, oldPassword, newPassword)
}

func okLogin(p entity.Principal, token string) func(ctx context.Context, creds directory.Credentials) (*directory.LoginResult, error) {
	return func(ctx context.Context, creds directory.Credentials) (*directory.LoginResult, error) {
		return &directory.LoginResult{Success: true, Token: token, User: p}, nil
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: login exitoso persiste principal y token por la vida del proceso.
func TestLogin_ExitoPersistePrincipalYToken(t *testing.T) {
	admin := entity.Principal{ID: 1, Username: "admin", Role: entity.RoleAdmin}
	s := session.New()
	s.Bind(&fakeAuthAPI{loginFn: okLogin(admin, "tok-abc")})

	p, err := s.Login(context.Background(), "admin", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Username)

	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, 1, current.ID)
	assert.Equal(t, "tok-abc", s.Token())
}

// Caso 2: credenciales rechazadas (401 remoto) → ErrUnauthorized y la sesión
// no cambia de estado.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	s := session.New()
	s.Bind(&fakeAuthAPI{
		loginFn: func(ctx context.Context, creds directory.Credentials) (*directory.LoginResult, error) {
			return nil, &domain.APIError{Status: 401, Message: "Invalid credentials"}
		},
	})

	_, err := s.Login(context.Background(), "admin", "mala")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, s.Current(), "un login fallido no deja sesión a medias")
	assert.Empty(t, s.Token())
}

// Caso 3: fallo de red en el login → el error de transporte sube tal cual
// y tampoco hay cambio de estado.
func TestLogin_FalloDeRedNoCambiaEstado(t *testing.T) {
	s := session.New()
	s.Bind(&fakeAuthAPI{
		loginFn: func(ctx context.Context, creds directory.Credentials) (*directory.LoginResult, error) {
			return nil, &domain.TransportError{Op: "Login", Err: errors.New("connection refused")}
		},
	})

	_, err := s.Login(context.Background(), "admin", "secreto")
	var tErr *domain.TransportError
	assert.ErrorAs(t, err, &tErr)
	assert.Nil(t, s.Current())
}

// Caso 4: un segundo login reemplaza la sesión anterior.
func TestLogin_SegundoLoginReemplazaSesion(t *testing.T) {
	s := session.New()
	api := &fakeAuthAPI{loginFn: okLogin(entity.Principal{ID: 1, Username: "admin", Role: entity.RoleAdmin}, "tok-1")}
	s.Bind(api)

	_, err := s.Login(context.Background(), "admin", "secreto")
	require.NoError(t, err)

	api.loginFn = okLogin(entity.Principal{ID: 7, Username: "empleado", Role: entity.RoleUser}, "tok-2")
	_, err = s.Login(context.Background(), "empleado", "secreto")
	require.NoError(t, err)

	assert.Equal(t, 7, s.Current().ID)
	assert.Equal(t, "tok-2", s.Token())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Logout
// ──────────────────────────────────────────────────────────────────────────────

// Logout limpia principal y token aunque la invalidación remota falle:
// el usuario nunca queda atrapado en una sesión que no puede cerrar.
func TestLogout_LimpiaAunqueElRemotoFalle(t *testing.T) {
	s := session.New()
	s.Bind(&fakeAuthAPI{
		loginFn:  okLogin(entity.Principal{ID: 1, Username: "admin", Role: entity.RoleAdmin}, "tok-abc"),
		logoutFn: func(ctx context.Context) error { return errors.New("servicio caído") },
	})

	_, err := s.Login(context.Background(), "admin", "secreto")
	require.NoError(t, err)

	err = s.Logout(context.Background())
	assert.Error(t, err, "el error remoto se devuelve solo para registro")
	assert.Nil(t, s.Current(), "el estado local se limpia incondicionalmente")
	assert.Empty(t, s.Token())
}

func TestLogout_ConRemotoSano(t *testing.T) {
	s := session.New()
	s.Bind(&fakeAuthAPI{
		loginFn:  okLogin(entity.Principal{ID: 1, Username: "admin", Role: entity.RoleAdmin}, "tok-abc"),
		logoutFn: func(ctx context.Context) error { return nil },
	})

	_, err := s.Login(context.Background(), "admin", "secreto")
	require.NoError(t, err)
	require.NoError(t, s.Logout(context.Background()))
	assert.Nil(t, s.Current())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Current / ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

// Current devuelve una copia: mutar el resultado no toca la sesión.
func TestCurrent_DevuelveCopia(t *testing.T) {
	s := session.New()
	s.Bind(&fakeAuthAPI{loginFn: okLogin(entity.Principal{ID: 1, Username: "admin", Role: entity.RoleAdmin}, "tok")})

	_, err := s.Login(context.Background(), "admin", "secreto")
	require.NoError(t, err)

	p := s.Current()
	p.Role = entity.RoleUser

	assert.Equal(t, entity.RoleAdmin, s.Current().Role,
		"el llamador no puede mutar el principal de la sesión")
}

func TestChangePassword_SinSesionRetornaError(t *testing.T) {
	s := session.New()
	s.Bind(&fakeAuthAPI{})

	err := s.ChangePassword(context.Background(), "vieja", "nueva")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestChangePassword_ConSesionDelega(t *testing.T) {
	var gotOld, gotNew string
	s := session.New()
	s.Bind(&fakeAuthAPI{
		loginFn: okLogin(entity.Principal{ID: 1, Username: "admin", Role: entity.RoleAdmin}, "tok"),
		changeFn: func(ctx context.Context, oldPassword, newPassword string) error {
			gotOld, gotNew = oldPassword, newPassword
			return nil
		},
	})

	_, err := s.Login(context.Background(), "admin", "secreto")
	require.NoError(t, err)
	require.NoError(t, s.ChangePassword(context.Background(), "vieja", "nueva"))

	assert.Equal(t, "vieja", gotOld)
	assert.Equal(t, "nueva", gotNew)
}
