package dto

import "github.com/jhoicas/directorio-admin/internal/domain/entity"

// PositionRequest alta/edición de un cargo.
type PositionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PositionListResponse view-model de la pantalla de cargos: catálogo más el
// histograma título→usuarios derivado del último listado de usuarios.
type PositionListResponse struct {
	State      SliceState        `json:"state"`
	Positions  []entity.Position `json:"positions"`
	Histogram  map[string]int    `json:"histogram"`
	TotalUsers int               `json:"total_users"` // suma del histograma, no del catálogo
}
