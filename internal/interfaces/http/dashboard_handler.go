package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-admin/internal/application/dto"
	"github.com/jhoicas/directorio-admin/internal/application/store"
)

// DashboardHandler dashboards de admin y de usuario final.
type DashboardHandler struct {
	users       *store.UsersStore
	departments *store.DepartmentsStore
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(users *store.UsersStore, departments *store.DepartmentsStore) *DashboardHandler {
	return &DashboardHandler{users: users, departments: departments}
}

// Admin godoc
// @Summary      Dashboard de administración
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	_, _ = h.users.Statistics(c.Context())
	_, _ = h.departments.Stats(c.Context())

	userSnap := h.users.Snapshot()
	deptSnap := h.departments.Snapshot()
	return c.JSON(dto.DashboardResponse{
		State:           dto.StateOf(userSnap.Status, userSnap.Err),
		Statistics:      userSnap.Stats,
		DepartmentStats: deptSnap.Stats,
	})
}

// User godoc
// @Summary      Dashboard de usuario final
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /user/dashboard [get]
func (h *DashboardHandler) User(c *fiber.Ctx) error {
	_, _ = h.users.Statistics(c.Context())

	snap := h.users.Snapshot()
	return c.JSON(dto.DashboardResponse{
		State:      dto.StateOf(snap.Status, snap.Err),
		Statistics: snap.Stats,
	})
}
