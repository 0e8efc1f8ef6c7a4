package directory

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/directorio-admin/internal/domain/entity"
)

// AdminPayload cuerpo de creación de una cuenta de administrador.
type AdminPayload struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	IsSuperuser bool   `json:"is_superuser"`
}

// ListAdmins lista las cuentas de administrador.
func (c *Client) ListAdmins(ctx context.Context) ([]entity.Admin, error) {
	return doList[entity.Admin](c, ctx, "ListAdmins", "/admins/", nil)
}

// CreateAdmin crea una cuenta de administrador.
func (c *Client) CreateAdmin(ctx context.Context, in AdminPayload) (*entity.Admin, error) {
	var out struct {
		Success bool         `json:"success"`
		User    entity.Admin `json:"user"`
	}
	if err := c.do(ctx, "CreateAdmin", http.MethodPost, "/admins/create/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// DeleteAdmin elimina una cuenta de administrador. El servicio rechaza
// eliminar la cuenta propia; ese error sube tal cual.
func (c *Client) DeleteAdmin(ctx context.Context, id int) error {
	return c.do(ctx, "DeleteAdmin", http.MethodDelete, fmt.Sprintf("/admins/%d/delete/", id), nil, nil, nil)
}

// SetUserPassword fija la contraseña de cualquier usuario (operación de admin).
func (c *Client) SetUserPassword(ctx context.Context, userID int, newPassword string) error {
	body := map[string]string{"new_password": newPassword}
	return c.do(ctx, "SetUserPassword", http.MethodPost, fmt.Sprintf("/admins/%d/change-password/", userID), nil, body, nil)
}
