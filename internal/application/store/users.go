package store

import (
	"context"
	"sync"

	"github.com/jhoicas/directorio-admin/internal/domain/entity"
)

// UsersAPI contrato mínimo del facade que necesita el store de usuarios.
type UsersAPI interface {
	ListUsers(ctx context.Context, filter map[string]string) ([]entity.UserSummary, error)
	GetUser(ctx context.Context, id int) (*entity.UserDetail, error)
	CreateUser(ctx context.Context, payload map[string]any) (*entity.UserDetail, error)
	UpdateUser(ctx context.Context, id int, payload map[string]any) (*entity.UserDetail, error)
	DeleteUser(ctx context.Context, id int) error
	UserStatistics(ctx context.Context) (*entity.UserStatistics, error)
	ChangeUserStatus(ctx context.Context, id int, status string) (*entity.UserDetail, error)
}

// UsersStore estado conocido del recurso usuarios: colección, detalle actual
// (como máximo uno residente) y estadísticas, con estado de carga y error.
type UsersStore struct {
	api UsersAPI

	mu     sync.Mutex
	status Status
	err    error
	users  []entity.UserSummary
	detail *entity.UserDetail
	stats  *entity.UserStatistics
	seq    uint64 // número de secuencia del último List emitido
}

// NewUsersStore construye el store vacío (estado idle).
func NewUsersStore(api UsersAPI) *UsersStore {
	return &UsersStore{api: api, status: StatusIdle}
}

// UsersSnapshot copia del estado para render; el llamador no comparte memoria
// con el store.
type UsersSnapshot struct {
	Status Status
	Err    error
	Users  []entity.UserSummary
	Detail *entity.UserDetail
	Stats  *entity.UserStatistics
}

// Snapshot devuelve el estado actual por valor.
func (s *UsersStore) Snapshot() UsersSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := UsersSnapshot{Status: s.status, Err: s.err, Stats: s.stats}
	if s.users != nil {
		snap.Users = make([]entity.UserSummary, len(s.users))
		copy(snap.Users, s.users)
	}
	if s.detail != nil {
		d := *s.detail
		snap.Detail = &d
	}
	return snap
}

// beginList marca loading, limpia el error previo y emite el número de
// secuencia del fetch. Una respuesta cuyo número ya no sea el último emitido
// se descarta al aplicar: gana el fetch emitido más recientemente, no el que
// resuelva último.
func (s *UsersStore) beginList() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.status = StatusLoading
	s.err = nil
	return s.seq
}

// List reemplaza la colección completa con el resultado del servicio
// (sin merge incremental; el orden es el que devuelva el servicio).
func (s *UsersStore) List(ctx context.Context, filter map[string]string) error {
	seq := s.beginList()
	users, err := s.api.ListUsers(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		// fetch superado por otro emitido después; se descarta la respuesta
		return nil
	}
	if err != nil {
		s.status = StatusFailed
		s.err = err // la colección anterior se conserva tal cual
		return err
	}
	s.status = StatusLoaded
	s.err = nil
	s.users = users
	return nil
}

// GetByID puebla el slot de detalle (exactamente uno residente a la vez).
func (s *UsersStore) GetByID(ctx context.Context, id int) (*entity.UserDetail, error) {
	s.begin()
	detail, err := s.api.GetUser(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	s.detail = detail
	return detail, nil
}

// ClearDetail vacía el slot de detalle. Debe llamarse al salir de la pantalla
// de detalle para que el siguiente perfil no muestre un registro viejo
// mientras resuelve su propio fetch.
func (s *UsersStore) ClearDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = nil
}

// Create crea un usuario; en éxito lo incorpora a la colección residente sin
// forzar un re-listado.
func (s *UsersStore) Create(ctx context.Context, payload map[string]any) (*entity.UserDetail, error) {
	s.begin()
	created, err := s.api.CreateUser(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	if s.users != nil {
		s.users = append(s.users, summaryOf(created))
	}
	return created, nil
}

// Update reemplaza un usuario; en éxito lo mezcla en la colección residente
// y actualiza el detalle si es el mismo registro.
func (s *UsersStore) Update(ctx context.Context, id int, payload map[string]any) (*entity.UserDetail, error) {
	s.begin()
	updated, err := s.api.UpdateUser(ctx, id, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	s.mergeLocked(updated)
	return updated, nil
}

// Delete elimina en el servicio. El store NO quita el registro de su
// colección: el llamador debe disparar un List posterior (el round trip extra
// compra consistencia con el servicio, igual que el comportamiento original).
func (s *UsersStore) Delete(ctx context.Context, id int) error {
	s.begin()
	err := s.api.DeleteUser(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return err
	}
	s.status = StatusLoaded
	s.err = nil
	return nil
}

// ChangeStatus cambia el estado laboral y mezcla el resultado.
func (s *UsersStore) ChangeStatus(ctx context.Context, id int, status string) (*entity.UserDetail, error) {
	s.begin()
	updated, err := s.api.ChangeUserStatus(ctx, id, status)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	s.mergeLocked(updated)
	return updated, nil
}

// Statistics refresca los agregados del directorio.
func (s *UsersStore) Statistics(ctx context.Context) (*entity.UserStatistics, error) {
	s.begin()
	stats, err := s.api.UserStatistics(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err // las estadísticas anteriores se conservan
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	s.stats = stats
	return stats, nil
}

// begin marca loading y limpia el error previo (mutaciones y fetches de un
// solo registro; los listados usan beginList por el número de secuencia).
func (s *UsersStore) begin() {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = nil
	s.mu.Unlock()
}

// mergeLocked actualiza colección y detalle con un registro fresco.
// Requiere s.mu tomado.
func (s *UsersStore) mergeLocked(d *entity.UserDetail) {
	for i := range s.users {
		if s.users[i].ID == d.ID {
			s.users[i] = summaryOf(d)
			break
		}
	}
	if s.detail != nil && s.detail.ID == d.ID {
		copyD := *d
		s.detail = &copyD
	}
}

func summaryOf(d *entity.UserDetail) entity.UserSummary {
	return entity.UserSummary{
		ID:             d.ID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		FullName:       d.FullName,
		Email:          d.Email,
		Phone:          d.Phone,
		Department:     d.Department,
		DepartmentName: d.DepartmentName,
		Position:       d.Position,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt,
	}
}
