package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-admin/internal/application/dto"
	"github.com/jhoicas/directorio-admin/internal/application/store"
	"github.com/jhoicas/directorio-admin/internal/domain/entity"
)

// UserHandler pantallas de gestión de usuarios (listado, alta, edición,
// perfil, baja, cambio de estado).
type UserHandler struct {
	users *store.UsersStore
}

// NewUserHandler construye el handler.
func NewUserHandler(users *store.UsersStore) *UserHandler {
	return &UserHandler{users: users}
}

// List godoc
// @Summary      Listado de usuarios
// @Tags         users
// @Produce      json
// @Param        search  query  string  false  "filtro por nombre, email o departamento"
// @Success      200     {object}  dto.UserListResponse
// @Router       /admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	// el error de un refresco fallido queda registrado en el store;
	// se renderiza la última lista conocida igualmente
	_ = h.users.List(c.Context(), nil)

	snap := h.users.Snapshot()
	users := filterUsers(snap.Users, c.Query("search"))
	return c.JSON(dto.UserListResponse{
		State: dto.StateOf(snap.Status, snap.Err),
		Users: users,
		Total: len(users),
	})
}

// filterUsers filtro de presentación por substring sobre nombre, email o
// departamento. No reordena: el orden es el que devolvió el servicio.
func filterUsers(users []entity.UserSummary, search string) []entity.UserSummary {
	if search == "" {
		return users
	}
	needle := strings.ToLower(search)
	out := make([]entity.UserSummary, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FullName), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) ||
			strings.Contains(strings.ToLower(u.DepartmentName), needle) {
			out = append(out, u)
		}
	}
	return out
}

// Profile godoc
// @Summary      Perfil de un usuario
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/users/{id} [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	// limpiar el slot antes del fetch: el detalle anterior no debe
	// asomar en la nueva pantalla mientras resuelve el suyo
	h.users.ClearDetail()
	if _, err := h.users.GetByID(c.Context(), id); err != nil {
		return renderError(c, err)
	}

	snap := h.users.Snapshot()
	return c.JSON(dto.UserProfileResponse{
		State: dto.StateOf(snap.Status, snap.Err),
		User:  snap.Detail,
	})
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserForm  true  "formulario de usuario"
// @Success      201   {object}  entity.UserDetail
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var form dto.UserForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.users.Create(c.Context(), dto.CleanUserPayload(form))
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int           true  "ID del usuario"
// @Param        body  body  dto.UserForm  true  "formulario de usuario"
// @Success      200   {object}  entity.UserDetail
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var form dto.UserForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.users.Update(c.Context(), id, dto.CleanUserPayload(form))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(updated)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.users.Delete(c.Context(), id); err != nil {
		return renderError(c, err)
	}
	// el store no quita el registro por su cuenta: la baja se refleja
	// con el re-listado que dispara este handler
	_ = h.users.List(c.Context(), nil)

	snap := h.users.Snapshot()
	return c.JSON(dto.UserListResponse{
		State: dto.StateOf(snap.Status, snap.Err),
		Users: snap.Users,
		Total: len(snap.Users),
	})
}

// ChangeStatus godoc
// @Summary      Cambiar estado laboral
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID del usuario"
// @Param        body  body  dto.ChangeStatusRequest  true  "nuevo estado"
// @Success      200   {object}  entity.UserDetail
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/users/{id}/status [post]
func (h *UserHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !entity.ValidStatus(in.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser active, inactive u on_leave"})
	}
	updated, err := h.users.ChangeStatus(c.Context(), id, in.Status)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(updated)
}
