package entity

// Roles válidos para Principal.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Principal representa al actor autenticado de la sesión actual.
// Se crea en el login y se destruye en el logout; como máximo hay uno activo.
type Principal struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"` // "admin" | "user"
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}
