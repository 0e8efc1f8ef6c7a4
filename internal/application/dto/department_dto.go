package dto

import "github.com/jhoicas/directorio-admin/internal/domain/entity"

// DepartmentRequest alta/edición de un departamento.
type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DepartmentListResponse view-model del listado de departamentos.
type DepartmentListResponse struct {
	State       SliceState          `json:"state"`
	Departments []entity.Department `json:"departments"`
}

// DashboardResponse view-model del dashboard de administración:
// agregados de usuarios más estadísticas por departamento.
type DashboardResponse struct {
	State           SliceState               `json:"state"`
	Statistics      *entity.UserStatistics   `json:"statistics"`
	DepartmentStats []entity.DepartmentStats `json:"department_stats,omitempty"`
}
