package entity

import "time"

// Position cargo del catálogo. OJO: los usuarios guardan el cargo como texto
// libre (coincidencia por título), no como FK a esta entidad; renombrar un
// título deja huérfanos los conteos de usuarios que referencien el anterior.
type Position struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PositionHistogram deriva el conteo título→usuarios recorriendo el listado
// completo de usuarios; solo es tan fresco como el último fetch de ese listado.
func PositionHistogram(users []UserSummary) map[string]int {
	hist := make(map[string]int)
	for _, u := range users {
		if u.Position != "" {
			hist[u.Position]++
		}
	}
	return hist
}
