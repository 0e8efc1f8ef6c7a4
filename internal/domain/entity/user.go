package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para User.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on_leave"
)

// ValidStatus indica si s es uno de los estados reconocidos.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusOnLeave
}

// UserSummary fila del listado de usuarios (serializer de lista del servicio).
type UserSummary struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Department     *int      `json:"department"` // referencia nullable
	DepartmentName string    `json:"department_name"`
	Position       string    `json:"position"` // texto libre, NO es FK a Position (ver doc)
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserDetail registro completo de un usuario. Las fechas de calendario
// (date_of_birth, hire_date) llegan como "YYYY-MM-DD" y se conservan como string.
// Salary es un campo decimal remoto: llega como string numérico y es nullable.
type UserDetail struct {
	ID             int              `json:"id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	FullName       string           `json:"full_name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	DateOfBirth    string           `json:"date_of_birth"`
	Gender         string           `json:"gender"`
	Address        string           `json:"address"`
	City           string           `json:"city"`
	State          string           `json:"state"`
	Country        string           `json:"country"`
	PostalCode     string           `json:"postal_code"`
	Department     *int             `json:"department"`
	DepartmentName string           `json:"department_name"`
	Position       string           `json:"position"`
	EmployeeID     string           `json:"employee_id"`
	HireDate       string           `json:"hire_date"`
	Salary         *decimal.Decimal `json:"salary"`
	Status         string           `json:"status"`
	ProfilePicture string           `json:"profile_picture"`
	Bio            string           `json:"bio"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// UserStatistics agregados calculados por el servicio remoto.
type UserStatistics struct {
	TotalUsers          int                   `json:"total_users"`
	ActiveUsers         int                   `json:"active_users"`
	InactiveUsers       int                   `json:"inactive_users"`
	OnLeaveUsers        int                   `json:"on_leave_users"`
	DepartmentBreakdown []DepartmentBreakdown `json:"department_breakdown"`
}

// DepartmentBreakdown conteo de usuarios por departamento dentro de las estadísticas.
type DepartmentBreakdown struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	UserCount int    `json:"user_count"`
}
