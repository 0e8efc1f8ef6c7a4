package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-admin/internal/application/guard"
	"github.com/jhoicas/directorio-admin/internal/application/session"
	"github.com/jhoicas/directorio-admin/internal/application/store"
	"github.com/jhoicas/directorio-admin/pkg/config"
	"github.com/jhoicas/directorio-admin/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session     *session.Store
	Users       *store.UsersStore
	Departments *store.DepartmentsStore
	Admins      *store.AdminsStore
	Positions   *store.PositionsStore
	SessionCfg  config.SessionConfig
	Log         *logger.Logger
}

// Router registra las rutas del gateway. El árbol replica la navegación de la
// aplicación: login público, raíz con redirección por rol, subárbol /admin
// tras el guard AdminOnly y subárbol /user tras UserOnly. Los guards se
// evalúan en cada petición.
func Router(app *fiber.App, deps RouterDeps) {
	principal := PrincipalMiddleware(deps.SessionCfg.CookieName, deps.SessionCfg.Secret, deps.Session)

	authHandler := NewAuthHandler(deps.Session, deps.SessionCfg, deps.Log)
	shellHandler := NewShellHandler()
	dashboardHandler := NewDashboardHandler(deps.Users, deps.Departments)
	userHandler := NewUserHandler(deps.Users)
	departmentHandler := NewDepartmentHandler(deps.Departments)
	adminHandler := NewAdminHandler(deps.Admins)
	positionHandler := NewPositionHandler(deps.Positions)

	// Auth (público)
	app.Post("/login", principal, authHandler.Login)
	app.Post("/logout", principal, authHandler.Logout)

	// Raíz: redirección por rol
	app.Get("/", principal, Guard(guard.Authenticated), shellHandler.Root)
	app.Get("/nav", principal, Guard(guard.Authenticated), shellHandler.Nav)

	// Subárbol de administración (AdminOnly)
	admin := app.Group("/admin", principal, Guard(guard.AdminOnly))
	admin.Get("/dashboard", dashboardHandler.Admin)

	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	admin.Get("/users/:id", userHandler.Profile)
	admin.Put("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)
	admin.Post("/users/:id/status", userHandler.ChangeStatus)

	admin.Get("/departments", departmentHandler.List)
	admin.Post("/departments", departmentHandler.Create)
	admin.Put("/departments/:id", departmentHandler.Update)
	admin.Delete("/departments/:id", departmentHandler.Delete)

	admin.Get("/admins", adminHandler.List)
	admin.Post("/admins", adminHandler.Create)
	admin.Delete("/admins/:id", adminHandler.Delete)
	admin.Post("/admins/:id/password", adminHandler.SetUserPassword)

	admin.Get("/positions", positionHandler.List)
	admin.Post("/positions", positionHandler.Create)
	admin.Put("/positions/:id", positionHandler.Update)
	admin.Delete("/positions/:id", positionHandler.Delete)

	admin.Post("/change-password", authHandler.ChangePassword)

	// Subárbol de usuario final (UserOnly)
	user := app.Group("/user", principal, Guard(guard.UserOnly))
	user.Get("/dashboard", dashboardHandler.User)
	user.Post("/change-password", authHandler.ChangePassword)
}
