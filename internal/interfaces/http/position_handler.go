package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-admin/internal/application/dto"
	"github.com/jhoicas/directorio-admin/internal/application/store"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
)

// PositionHandler pantalla de gestión de cargos: catálogo más el histograma
// título→usuarios derivado del listado de usuarios.
type PositionHandler struct {
	positions *store.PositionsStore
}

// NewPositionHandler construye el handler.
func NewPositionHandler(positions *store.PositionsStore) *PositionHandler {
	return &PositionHandler{positions: positions}
}

// List godoc
// @Summary      Catálogo de cargos con histograma de usuarios
// @Tags         positions
// @Produce      json
// @Success      200  {object}  dto.PositionListResponse
// @Router       /admin/positions [get]
func (h *PositionHandler) List(c *fiber.Ctx) error {
	_ = h.positions.List(c.Context())
	// el histograma se deriva del listado completo de usuarios;
	// si este fetch falla se muestra el anterior
	_, _ = h.positions.RefreshHistogram(c.Context())

	snap := h.positions.Snapshot()
	total := 0
	for _, n := range snap.Histogram {
		total += n
	}
	return c.JSON(dto.PositionListResponse{
		State:      dto.StateOf(snap.Status, snap.Err),
		Positions:  snap.Positions,
		Histogram:  snap.Histogram,
		TotalUsers: total,
	})
}

// Create godoc
// @Summary      Crear cargo
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PositionRequest  true  "title, description"
// @Success      201   {object}  entity.Position
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/positions [post]
func (h *PositionHandler) Create(c *fiber.Ctx) error {
	var in dto.PositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	created, err := h.positions.Create(c.Context(), directory.PositionPayload{Title: in.Title, Description: in.Description})
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update godoc
// @Summary      Actualizar cargo
// @Tags         positions
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del cargo"
// @Param        body  body  dto.PositionRequest  true  "title, description"
// @Success      200   {object}  entity.Position
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/positions/{id} [put]
func (h *PositionHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.PositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.positions.Update(c.Context(), id, directory.PositionPayload{Title: in.Title, Description: in.Description})
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(updated)
}

// Delete godoc
// @Summary      Eliminar cargo
// @Tags         positions
// @Produce      json
// @Param        id   path  int  true  "ID del cargo"
// @Success      200  {object}  dto.PositionListResponse
// @Router       /admin/positions/{id} [delete]
func (h *PositionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.positions.Delete(c.Context(), id); err != nil {
		return renderError(c, err)
	}
	_ = h.positions.List(c.Context())

	snap := h.positions.Snapshot()
	total := 0
	for _, n := range snap.Histogram {
		total += n
	}
	return c.JSON(dto.PositionListResponse{
		State:      dto.StateOf(snap.Status, snap.Err),
		Positions:  snap.Positions,
		Histogram:  snap.Histogram,
		TotalUsers: total,
	})
}
