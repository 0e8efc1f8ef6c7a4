package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-admin/internal/application/dto"
	"github.com/jhoicas/directorio-admin/internal/domain"
)

// renderError mapea los errores del facade/stores a respuestas HTTP del
// gateway. Las tres formas de error del servicio remoto terminan aquí como
// un único mensaje presentable.
func renderError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Error()})
	}

	var aErr *domain.APIError
	if errors.As(err, &aErr) {
		switch aErr.Status {
		case fiber.StatusUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: aErr.Message})
		case fiber.StatusForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: aErr.Message})
		case fiber.StatusNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: aErr.Message})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE", Message: aErr.Message})
		}
	}

	var tErr *domain.TransportError
	if errors.As(err, &tErr) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SERVICE_UNAVAILABLE", Message: "servicio de directorio no disponible, reintente"})
	}

	if errors.Is(err, domain.ErrUnauthorized) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNoSession) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
