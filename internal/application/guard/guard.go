package guard

import "github.com/jhoicas/directorio-admin/internal/domain/entity"

// Rutas destino de las redirecciones de los guards.
const (
	PathLogin     = "/login"
	PathAdminHome = "/admin/dashboard"
	PathUserHome  = "/user/dashboard"
)

// Decision resultado de evaluar un guard: dejar pasar o redirigir.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision { return Decision{Allow: true} }
func redirect(to string) Decision { return Decision{RedirectTo: to} }

// IsAdminPrincipal es el único punto donde se deriva la condición de admin
// (rol "admin" o flag de staff); todos los guards y handlers deben usarlo
// para que el criterio no se desvíe entre call sites.
func IsAdminPrincipal(p *entity.Principal) bool {
	return p != nil && (p.Role == entity.RoleAdmin || p.IsStaff)
}

// Authenticated deja pasar a cualquier principal; sin sesión redirige al login.
// Se evalúa en cada navegación, nunca se cachea la decisión.
func Authenticated(p *entity.Principal, path string) Decision {
	if p == nil {
		return redirect(PathLogin)
	}
	return allow()
}

// AdminOnly deja pasar solo a administradores; un usuario normal va a su home.
func AdminOnly(p *entity.Principal, path string) Decision {
	if p == nil {
		return redirect(PathLogin)
	}
	if !IsAdminPrincipal(p) {
		return redirect(PathUserHome)
	}
	return allow()
}

// UserOnly deja pasar solo a usuarios normales; un admin va a su home.
func UserOnly(p *entity.Principal, path string) Decision {
	if p == nil {
		return redirect(PathLogin)
	}
	if IsAdminPrincipal(p) {
		return redirect(PathAdminHome)
	}
	return allow()
}

// HomePath devuelve la ruta de inicio según el rol del principal.
func HomePath(p *entity.Principal) string {
	if p == nil {
		return PathLogin
	}
	if IsAdminPrincipal(p) {
		return PathAdminHome
	}
	return PathUserHome
}
