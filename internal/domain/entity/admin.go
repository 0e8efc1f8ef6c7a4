package entity

import "time"

// Admin cuenta de administrador. Colección disjunta de los usuarios del
// directorio aunque ambos representan personas que pueden iniciar sesión.
type Admin struct {
	ID          int        `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	IsSuperuser bool       `json:"is_superuser"`
	DateJoined  time.Time  `json:"date_joined"`
	LastLogin   *time.Time `json:"last_login"`
}
