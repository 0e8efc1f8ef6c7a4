package directory

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/directorio-admin/internal/domain/entity"
)

// ListUsers lista usuarios. filter se pasa como query string tal cual
// (el servicio decide qué filtros soporta).
func (c *Client) ListUsers(ctx context.Context, filter map[string]string) ([]entity.UserSummary, error) {
	var query url.Values
	if len(filter) > 0 {
		query = url.Values{}
		for k, v := range filter {
			query.Set(k, v)
		}
	}
	return doList[entity.UserSummary](c, ctx, "ListUsers", "/users/", query)
}

// GetUser obtiene el detalle de un usuario.
func (c *Client) GetUser(ctx context.Context, id int) (*entity.UserDetail, error) {
	var out entity.UserDetail
	if err := c.do(ctx, "GetUser", http.MethodGet, fmt.Sprintf("/users/%d/", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser crea un usuario. payload ya debe venir limpio
// (ver dto.CleanUserPayload: vacíos omitidos, department/salary en null).
func (c *Client) CreateUser(ctx context.Context, payload map[string]any) (*entity.UserDetail, error) {
	var out entity.UserDetail
	if err := c.do(ctx, "CreateUser", http.MethodPost, "/users/", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser reemplaza un usuario (PUT).
func (c *Client) UpdateUser(ctx context.Context, id int, payload map[string]any) (*entity.UserDetail, error) {
	var out entity.UserDetail
	if err := c.do(ctx, "UpdateUser", http.MethodPut, fmt.Sprintf("/users/%d/", id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PartialUpdateUser actualiza campos sueltos de un usuario (PATCH).
func (c *Client) PartialUpdateUser(ctx context.Context, id int, payload map[string]any) (*entity.UserDetail, error) {
	var out entity.UserDetail
	if err := c.do(ctx, "PartialUpdateUser", http.MethodPatch, fmt.Sprintf("/users/%d/", id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser elimina un usuario. El llamador debe re-listar después;
// el facade no toca ningún estado local.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, "DeleteUser", http.MethodDelete, fmt.Sprintf("/users/%d/", id), nil, nil, nil)
}

// UserStatistics obtiene los agregados del directorio.
func (c *Client) UserStatistics(ctx context.Context) (*entity.UserStatistics, error) {
	var out entity.UserStatistics
	if err := c.do(ctx, "UserStatistics", http.MethodGet, "/users/statistics/", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeUserStatus cambia el estado laboral de un usuario.
func (c *Client) ChangeUserStatus(ctx context.Context, id int, status string) (*entity.UserDetail, error) {
	body := map[string]string{"status": status}
	var out entity.UserDetail
	if err := c.do(ctx, "ChangeUserStatus", http.MethodPost, fmt.Sprintf("/users/%d/change_status/", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
