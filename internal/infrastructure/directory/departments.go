package directory

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/directorio-admin/internal/domain/entity"
)

// DepartmentPayload cuerpo de creación/actualización de un departamento.
type DepartmentPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListDepartments lista departamentos.
func (c *Client) ListDepartments(ctx context.Context) ([]entity.Department, error) {
	return doList[entity.Department](c, ctx, "ListDepartments", "/departments/", nil)
}

// GetDepartment obtiene un departamento por ID.
func (c *Client) GetDepartment(ctx context.Context, id int) (*entity.Department, error) {
	var out entity.Department
	if err := c.do(ctx, "GetDepartment", http.MethodGet, fmt.Sprintf("/departments/%d/", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDepartment crea un departamento.
func (c *Client) CreateDepartment(ctx context.Context, in DepartmentPayload) (*entity.Department, error) {
	var out entity.Department
	if err := c.do(ctx, "CreateDepartment", http.MethodPost, "/departments/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDepartment reemplaza un departamento (PUT).
func (c *Client) UpdateDepartment(ctx context.Context, id int, in DepartmentPayload) (*entity.Department, error) {
	var out entity.Department
	if err := c.do(ctx, "UpdateDepartment", http.MethodPut, fmt.Sprintf("/departments/%d/", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDepartment elimina un departamento.
func (c *Client) DeleteDepartment(ctx context.Context, id int) error {
	return c.do(ctx, "DeleteDepartment", http.MethodDelete, fmt.Sprintf("/departments/%d/", id), nil, nil, nil)
}

// DepartmentStats obtiene las estadísticas por departamento (calculadas por el servicio).
func (c *Client) DepartmentStats(ctx context.Context) ([]entity.DepartmentStats, error) {
	return doList[entity.DepartmentStats](c, ctx, "DepartmentStats", "/departments/stats/", nil)
}
