package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-admin/internal/application/dto"
	"github.com/jhoicas/directorio-admin/internal/application/guard"
)

// ShellHandler shell de navegación: principal actual y menú según rol.
type ShellHandler struct{}

// NewShellHandler construye el handler.
func NewShellHandler() *ShellHandler {
	return &ShellHandler{}
}

var adminMenu = []dto.NavItem{
	{Path: "/admin/dashboard", Label: "Dashboard"},
	{Path: "/admin/users", Label: "User Management"},
	{Path: "/admin/admins", Label: "Admin Management"},
	{Path: "/admin/positions", Label: "Positions"},
	{Path: "/admin/change-password", Label: "Change Password"},
}

var userMenu = []dto.NavItem{
	{Path: "/user/dashboard", Label: "Dashboard"},
	{Path: "/user/change-password", Label: "Change Password"},
}

// Nav godoc
// @Summary      Menú de navegación según rol
// @Tags         shell
// @Produce      json
// @Success      200  {object}  dto.ShellResponse
// @Router       /nav [get]
func (h *ShellHandler) Nav(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	menu := userMenu
	if guard.IsAdminPrincipal(p) {
		menu = adminMenu
	}
	return c.JSON(dto.ShellResponse{User: p, Menu: menu})
}

// Root redirige a la home que corresponda al rol del principal.
func (h *ShellHandler) Root(c *fiber.Ctx) error {
	return c.Redirect(guard.HomePath(GetPrincipal(c)), fiber.StatusFound)
}
