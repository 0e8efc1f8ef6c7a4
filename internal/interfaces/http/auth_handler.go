package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-admin/internal/application/dto"
	"github.com/jhoicas/directorio-admin/internal/application/guard"
	"github.com/jhoicas/directorio-admin/internal/application/session"
	"github.com/jhoicas/directorio-admin/pkg/config"
	"github.com/jhoicas/directorio-admin/pkg/logger"
	"github.com/jhoicas/directorio-admin/pkg/token"
)

// AuthHandler maneja login, logout y cambio de contraseña.
type AuthHandler struct {
	sess *session.Store
	cfg  config.SessionConfig
	log  *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(sess *session.Store, cfg config.SessionConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{sess: sess, cfg: cfg, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}

	principal, err := h.sess.Login(c.Context(), in.Username, in.Password)
	if err != nil {
		// un login fallido es terminal para ese intento: sin retry
		return renderError(c, err)
	}

	signed, err := token.Generate(h.cfg.Secret, *principal, h.cfg.Issuer, h.cfg.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    signed,
		Expires:  time.Now().Add(time.Duration(h.cfg.Expiration) * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(dto.LoginResponse{
		User:     *principal,
		Redirect: guard.HomePath(principal),
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// el estado local se limpia aunque la invalidación remota falle:
	// el usuario nunca queda atrapado sin poder salir
	if err := h.sess.Logout(c.Context()); err != nil {
		h.log.Warn().Err(err).Msg("invalidación remota de sesión fallida")
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"success": true})
}

// ChangePassword godoc
// @Summary      Cambiar la contraseña propia
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "old_password, new_password"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OldPassword == "" || in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "old_password y new_password son requeridos"})
	}
	if err := h.sess.ChangePassword(c.Context(), in.OldPassword, in.NewPassword); err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
