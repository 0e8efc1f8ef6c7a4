package entity

import "time"

// Department unidad organizativa a la que pertenecen los usuarios.
type Department struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserCount   int       `json:"user_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DepartmentStats estadísticas por departamento recalculadas por el servicio.
type DepartmentStats struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	TotalUsers    int    `json:"total_users"`
	ActiveUsers   int    `json:"active_users"`
	InactiveUsers int    `json:"inactive_users"`
	OnLeaveUsers  int    `json:"on_leave_users"`
}
