package dto

import (
	"github.com/jhoicas/directorio-admin/internal/application/store"
	"github.com/jhoicas/directorio-admin/internal/domain"
)

// ErrorResponse cuerpo de error HTTP del gateway.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SliceState estado del store que acompaña a cada view-model de página:
// la UI muestra "última lista conocida" aunque el refresco haya fallado.
type SliceState struct {
	Status string `json:"status"` // idle, loading, loaded, failed
	Error  string `json:"error,omitempty"`
}

// StateOf traduce estado y error de un store a la forma serializable.
func StateOf(status store.Status, err error) SliceState {
	return SliceState{
		Status: string(status),
		Error:  domain.ErrorMessage(err),
	}
}
