package directory

import (
	"context"
	"net/http"

	"github.com/jhoicas/directorio-admin/internal/domain/entity"
)

// Credentials credenciales de login contra el servicio remoto.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult respuesta de login. Token es el token de sesión opaco que el
// facade adjunta en las demás llamadas (puede venir vacío si el servicio usa
// otra forma de sesión).
type LoginResult struct {
	Success bool             `json:"success"`
	Token   string           `json:"token"`
	User    entity.Principal `json:"user"`
}

// Login autentica contra el servicio remoto. Un login fallido es terminal:
// no hay retry, el usuario debe reintentar.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var out LoginResult
	if err := c.do(ctx, "Login", http.MethodPost, "/auth/login/", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalida la sesión remota. El llamador limpia su estado local
// aunque esta llamada falle.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "Logout", http.MethodPost, "/auth/logout/", nil, nil, nil)
}

// ChangePassword cambia la contraseña del principal autenticado.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.do(ctx, "ChangePassword", http.MethodPost, "/auth/change-password/", nil, body, nil)
}
