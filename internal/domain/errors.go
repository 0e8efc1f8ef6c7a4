package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("credenciales inválidas")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNoSession    = errors.New("no hay sesión activa")
	ErrInvalidInput = errors.New("entrada inválida")
)

// ValidationError error de validación reportado por el servicio remoto,
// con mensajes por campo (forma {field: [messages]}).
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validación fallida"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "validación fallida: " + strings.Join(parts, ", ")
}

// FirstMessage devuelve el primer mensaje del campo indicado, o "" si no hay.
func (e *ValidationError) FirstMessage(field string) string {
	msgs := e.Fields[field]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

// TransportError fallo de red: el servicio remoto no respondió.
// No hay retry automático; el usuario debe reintentar la acción.
type TransportError struct {
	Op  string // operación del facade que falló (ej. "ListUsers")
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transporte: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError error estructurado reportado por el servicio remoto
// (formas {error: string} o {detail: string}).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// ErrorMessage aplana cualquier error del facade a un mensaje presentable.
// Cubre las tres formas de cuerpo de error del servicio remoto.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	var aErr *APIError
	if errors.As(err, &aErr) && aErr.Message != "" {
		return aErr.Message
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return "servicio no disponible, reintente la acción"
	}
	return err.Error()
}
