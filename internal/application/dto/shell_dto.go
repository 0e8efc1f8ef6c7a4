package dto

import "github.com/jhoicas/directorio-admin/internal/domain/entity"

// NavItem entrada del menú de navegación.
type NavItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// ShellResponse view-model del shell: principal actual y menú según rol.
type ShellResponse struct {
	User *entity.Principal `json:"user"`
	Menu []NavItem         `json:"menu"`
}
