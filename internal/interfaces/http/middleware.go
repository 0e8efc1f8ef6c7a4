package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/directorio-admin/internal/application/guard"
	"github.com/jhoicas/directorio-admin/internal/application/session"
	"github.com/jhoicas/directorio-admin/internal/domain/entity"
	"github.com/jhoicas/directorio-admin/pkg/logger"
	"github.com/jhoicas/directorio-admin/pkg/token"
)

// Locals keys en Fiber.
const (
	LocalPrincipal = "principal"
	LocalRequestID = "request_id"
)

// GetPrincipal devuelve el principal del contexto (nil si no hay sesión).
func GetPrincipal(c *fiber.Ctx) *entity.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return nil
	}
	p, _ := v.(*entity.Principal)
	return p
}

// RequestLogger asigna un request_id y registra método, ruta, status y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.New().String()
		c.Locals(LocalRequestID, requestID)

		start := time.Now()
		err := c.Next()

		log.WithRequest(requestID).Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// PrincipalMiddleware resuelve el principal de la petición: parsea la cookie
// de sesión firmada y la contrasta con la sesión activa del proceso. Una
// cookie válida de una sesión ya cerrada (logout) no cuenta: el guard debe
// verse sin principal. No corta la petición; eso lo decide el guard.
func PrincipalMiddleware(cookieName, secret string, sess *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(cookieName)
		if cookie == "" {
			return c.Next()
		}
		p, err := token.Parse(secret, cookie)
		if err != nil {
			return c.Next()
		}
		current := sess.Current()
		if current == nil || current.ID != p.ID {
			return c.Next()
		}
		c.Locals(LocalPrincipal, current)
		return c.Next()
	}
}

// Guard adapta una función pura de guard a middleware Fiber. La decisión se
// evalúa en cada navegación (el rol o la sesión pueden cambiar a mitad de
// sesión); nunca se cachea.
func Guard(decide func(*entity.Principal, string) guard.Decision) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := decide(GetPrincipal(c), c.Path())
		if !d.Allow {
			return c.Redirect(d.RedirectTo, fiber.StatusFound)
		}
		return c.Next()
	}
}
