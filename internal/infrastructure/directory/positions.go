package directory

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/directorio-admin/internal/domain/entity"
)

// PositionPayload cuerpo de creación/actualización de un cargo.
type PositionPayload struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ListPositions lista los cargos del catálogo.
func (c *Client) ListPositions(ctx context.Context) ([]entity.Position, error) {
	return doList[entity.Position](c, ctx, "ListPositions", "/positions-crud/", nil)
}

// GetPosition obtiene un cargo por ID.
func (c *Client) GetPosition(ctx context.Context, id int) (*entity.Position, error) {
	var out entity.Position
	if err := c.do(ctx, "GetPosition", http.MethodGet, fmt.Sprintf("/positions-crud/%d/", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePosition crea un cargo.
func (c *Client) CreatePosition(ctx context.Context, in PositionPayload) (*entity.Position, error) {
	var out entity.Position
	if err := c.do(ctx, "CreatePosition", http.MethodPost, "/positions-crud/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePosition reemplaza un cargo (PUT). Renombrar el título NO actualiza a
// los usuarios que lo referencian como texto: el histograma queda huérfano
// para el título anterior (comportamiento heredado, ver doc).
func (c *Client) UpdatePosition(ctx context.Context, id int, in PositionPayload) (*entity.Position, error) {
	var out entity.Position
	if err := c.do(ctx, "UpdatePosition", http.MethodPut, fmt.Sprintf("/positions-crud/%d/", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePosition elimina un cargo.
func (c *Client) DeletePosition(ctx context.Context, id int) error {
	return c.do(ctx, "DeletePosition", http.MethodDelete, fmt.Sprintf("/positions-crud/%d/", id), nil, nil, nil)
}
