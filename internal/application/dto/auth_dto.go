package dto

import "github.com/jhoicas/directorio-admin/internal/domain/entity"

// LoginRequest credenciales del formulario de login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida del login: principal y ruta de inicio según rol.
type LoginResponse struct {
	User     entity.Principal `json:"user"`
	Redirect string           `json:"redirect"`
}

// ChangePasswordRequest cambio de contraseña del principal autenticado.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// SetPasswordRequest un admin fija la contraseña de otra cuenta.
type SetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}
