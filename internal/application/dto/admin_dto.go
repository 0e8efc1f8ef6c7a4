package dto

import "github.com/jhoicas/directorio-admin/internal/domain/entity"

// CreateAdminRequest alta de una cuenta de administrador.
type CreateAdminRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	IsSuperuser bool   `json:"is_superuser"`
}

// AdminListResponse view-model del listado de administradores.
type AdminListResponse struct {
	State  SliceState     `json:"state"`
	Admins []entity.Admin `json:"admins"`
}
