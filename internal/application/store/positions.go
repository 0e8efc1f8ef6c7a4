package store

import (
	"context"
	"sync"

	"github.com/jhoicas/directorio-admin/internal/domain/entity"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
)

// PositionsAPI contrato mínimo del facade para cargos. Incluye el listado de
// usuarios porque el histograma título→usuarios se deriva en el cliente
// recorriendo el listado completo (no lo provee el servicio).
type PositionsAPI interface {
	ListPositions(ctx context.Context) ([]entity.Position, error)
	GetPosition(ctx context.Context, id int) (*entity.Position, error)
	CreatePosition(ctx context.Context, in directory.PositionPayload) (*entity.Position, error)
	UpdatePosition(ctx context.Context, id int, in directory.PositionPayload) (*entity.Position, error)
	DeletePosition(ctx context.Context, id int) error
	ListUsers(ctx context.Context, filter map[string]string) ([]entity.UserSummary, error)
}

// PositionsStore estado conocido del catálogo de cargos más el histograma
// derivado. El histograma solo es tan fresco como el último RefreshHistogram.
type PositionsStore struct {
	api PositionsAPI

	mu        sync.Mutex
	status    Status
	err       error
	positions []entity.Position
	detail    *entity.Position
	histogram map[string]int
	seq       uint64
}

// NewPositionsStore construye el store vacío.
func NewPositionsStore(api PositionsAPI) *PositionsStore {
	return &PositionsStore{api: api, status: StatusIdle}
}

// PositionsSnapshot copia del estado para render.
type PositionsSnapshot struct {
	Status    Status
	Err       error
	Positions []entity.Position
	Detail    *entity.Position
	Histogram map[string]int
}

// Snapshot devuelve el estado actual por valor.
func (s *PositionsStore) Snapshot() PositionsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := PositionsSnapshot{Status: s.status, Err: s.err}
	if s.positions != nil {
		snap.Positions = make([]entity.Position, len(s.positions))
		copy(snap.Positions, s.positions)
	}
	if s.histogram != nil {
		snap.Histogram = make(map[string]int, len(s.histogram))
		for k, v := range s.histogram {
			snap.Histogram[k] = v
		}
	}
	if s.detail != nil {
		d := *s.detail
		snap.Detail = &d
	}
	return snap
}

func (s *PositionsStore) beginList() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.status = StatusLoading
	s.err = nil
	return s.seq
}

func (s *PositionsStore) begin() {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = nil
	s.mu.Unlock()
}

// List reemplaza el catálogo completo.
func (s *PositionsStore) List(ctx context.Context) error {
	seq := s.beginList()
	positions, err := s.api.ListPositions(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return nil // respuesta vieja descartada
	}
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return err
	}
	s.status = StatusLoaded
	s.err = nil
	s.positions = positions
	return nil
}

// GetByID puebla el slot de detalle.
func (s *PositionsStore) GetByID(ctx context.Context, id int) (*entity.Position, error) {
	s.begin()
	detail, err := s.api.GetPosition(ctx, id)

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

// ClearDetail vacía el slot de detalle.
func (s *PositionsStore) ClearDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = nil
}

// Create crea un cargo y lo incorpora al catálogo residente.
func (s *PositionsStore) Create(ctx context.Context, in directory.PositionPayload) (*entity.Position, error) {
	s.begin()
	created, err := s.api.CreatePosition(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	if s.positions != nil {
		s.positions = append(s.positions, *created)
	}
	return created, nil
}

// Update reemplaza un cargo. El histograma NO se recalcula: los usuarios
// siguen referenciando el título como texto, así que un rename deja el conteo
// anterior huérfano hasta el próximo RefreshHistogram (comportamiento heredado).
func (s *PositionsStore) Update(ctx context.Context, id int, in directory.PositionPayload) (*entity.Position, error) {
	s.begin()
	updated, err := s.api.UpdatePosition(ctx, id, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	for i := range s.positions {
		if s.positions[i].ID == updated.ID {
			s.positions[i] = *updated
			break
		}
	}
	return updated, nil
}

// Delete elimina en el servicio; el llamador re-lista para reflejar la baja.
func (s *PositionsStore) Delete(ctx context.Context, id int) error {
	s.begin()
	err := s.api.DeletePosition(ctx, id)

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

// RefreshHistogram trae el listado completo de usuarios y recalcula el
// histograma título→usuarios por coincidencia de texto.
func (s *PositionsStore) RefreshHistogram(ctx context.Context) (map[string]int, error) {
	s.begin()
	users, err := s.api.ListUsers(ctx, nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err // el histograma anterior se conserva
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	s.histogram = entity.PositionHistogram(users)

	out := make(map[string]int, len(s.histogram))
	for k, v := range s.histogram {
		out[k] = v
	}
	return out, nil
}
