package dto

import "github.com/jhoicas/directorio-admin/internal/domain/entity"

// UserForm formulario de alta/edición de usuario: todos los campos llegan
// como string (así los entrega el formulario) y se limpian antes de enviar.
type UserForm map[string]string

// nullableUserFields campos que el esquema remoto trata como nullable:
// cuando llegan vacíos se envían como null explícito en vez de omitirse.
var nullableUserFields = map[string]bool{
	"department": true,
	"salary":     true,
}

// CleanUserPayload limpia el formulario para el servicio remoto: los campos
// en string vacío se omiten del payload saliente, salvo department y salary,
// que se coercen a null explícito. La asimetría refleja qué campos son
// nullable y cuáles optional-absent en el esquema remoto; no cambiarla.
func CleanUserPayload(form UserForm) map[string]any {
	payload := make(map[string]any, len(form))
	for k, v := range form {
		if v == "" {
			if nullableUserFields[k] {
				payload[k] = nil
			}
			continue
		}
		payload[k] = v
	}
	return payload
}

// ChangeStatusRequest cambio de estado laboral de un usuario.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// UserListResponse view-model del listado de usuarios.
type UserListResponse struct {
	State SliceState           `json:"state"`
	Users []entity.UserSummary `json:"users"`
	Total int                  `json:"total"`
}

// UserProfileResponse view-model del perfil de un usuario.
type UserProfileResponse struct {
	State SliceState         `json:"state"`
	User  *entity.UserDetail `json:"user"`
}
