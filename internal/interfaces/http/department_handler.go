package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-admin/internal/application/dto"
	"github.com/jhoicas/directorio-admin/internal/application/store"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
)

// DepartmentHandler pantallas de gestión de departamentos.
type DepartmentHandler struct {
	departments *store.DepartmentsStore
}

// NewDepartmentHandler construye el handler.
func NewDepartmentHandler(departments *store.DepartmentsStore) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

// List godoc
// @Summary      Listado de departamentos
// @Tags         departments
// @Produce      json
// @Success      200  {object}  dto.DepartmentListResponse
// @Router       /admin/departments [get]
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	_ = h.departments.List(c.Context())

	snap := h.departments.Snapshot()
	return c.JSON(dto.DepartmentListResponse{
		State:       dto.StateOf(snap.Status, snap.Err),
		Departments: snap.Departments,
	})
}

// Create godoc
// @Summary      Crear departamento
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DepartmentRequest  true  "name, description"
// @Success      201   {object}  entity.Department
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/departments [post]
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var in dto.DepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	created, err := h.departments.Create(c.Context(), directory.DepartmentPayload{Name: in.Name, Description: in.Description})
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update godoc
// @Summary      Actualizar departamento
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del departamento"
// @Param        body  body  dto.DepartmentRequest  true  "name, description"
// @Success      200   {object}  entity.Department
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/departments/{id} [put]
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.DepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.departments.Update(c.Context(), id, directory.DepartmentPayload{Name: in.Name, Description: in.Description})
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(updated)
}

// Delete godoc
// @Summary      Eliminar departamento
// @Tags         departments
// @Produce      json
// @Param        id   path  int  true  "ID del departamento"
// @Success      200  {object}  dto.DepartmentListResponse
// @Router       /admin/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.departments.Delete(c.Context(), id); err != nil {
		return renderError(c, err)
	}
	// la baja se refleja re-listando, no recortando la colección local
	_ = h.departments.List(c.Context())

	snap := h.departments.Snapshot()
	return c.JSON(dto.DepartmentListResponse{
		State:       dto.StateOf(snap.Status, snap.Err),
		Departments: snap.Departments,
	})
}
