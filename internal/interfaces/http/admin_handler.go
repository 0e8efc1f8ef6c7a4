package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-admin/internal/application/dto"
	"github.com/jhoicas/directorio-admin/internal/application/store"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
)

// AdminHandler pantallas de gestión de cuentas de administrador.
type AdminHandler struct {
	admins *store.AdminsStore
}

// NewAdminHandler construye el handler.
func NewAdminHandler(admins *store.AdminsStore) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// List godoc
// @Summary      Listado de administradores
// @Tags         admins
// @Produce      json
// @Success      200  {object}  dto.AdminListResponse
// @Router       /admin/admins [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	_ = h.admins.List(c.Context())

	snap := h.admins.Snapshot()
	return c.JSON(dto.AdminListResponse{
		State:  dto.StateOf(snap.Status, snap.Err),
		Admins: snap.Admins,
	})
}

// Create godoc
// @Summary      Crear administrador
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdminRequest  true  "username, email, password, is_superuser"
// @Success      201   {object}  entity.Admin
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/admins [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username, email y password son requeridos"})
	}
	created, err := h.admins.Create(c.Context(), directory.AdminPayload{
		Username:    in.Username,
		Email:       in.Email,
		Password:    in.Password,
		IsSuperuser: in.IsSuperuser,
	})
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Delete godoc
// @Summary      Eliminar administrador
// @Tags         admins
// @Produce      json
// @Param        id   path  int  true  "ID del administrador"
// @Success      200  {object}  dto.AdminListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/admins/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	// el servicio rechaza eliminar la cuenta propia; ese error sube tal cual
	if err := h.admins.Delete(c.Context(), id); err != nil {
		return renderError(c, err)
	}
	_ = h.admins.List(c.Context())

	snap := h.admins.Snapshot()
	return c.JSON(dto.AdminListResponse{
		State:  dto.StateOf(snap.Status, snap.Err),
		Admins: snap.Admins,
	})
}

// SetUserPassword godoc
// @Summary      Fijar contraseña de una cuenta
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la cuenta"
// @Param        body  body  dto.SetPasswordRequest  true  "new_password"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/admins/{id}/password [post]
func (h *AdminHandler) SetUserPassword(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.SetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "new_password es requerido"})
	}
	if err := h.admins.SetUserPassword(c.Context(), id, in.NewPassword); err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
