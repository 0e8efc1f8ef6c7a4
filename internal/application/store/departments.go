package store

import (
	"context"
	"sync"

	"github.com/jhoicas/directorio-admin/internal/domain/entity"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
)

// DepartmentsAPI contrato mínimo del facade para departamentos.
type DepartmentsAPI interface {
	ListDepartments(ctx context.Context) ([]entity.Department, error)
	GetDepartment(ctx context.Context, id int) (*entity.Department, error)
	CreateDepartment(ctx context.Context, in directory.DepartmentPayload) (*entity.Department, error)
	UpdateDepartment(ctx context.Context, id int, in directory.DepartmentPayload) (*entity.Department, error)
	DeleteDepartment(ctx context.Context, id int) error
	DepartmentStats(ctx context.Context) ([]entity.DepartmentStats, error)
}

// DepartmentsStore estado conocido del recurso departamentos.
type DepartmentsStore struct {
	api DepartmentsAPI

	mu          sync.Mutex
	status      Status
	err         error
	departments []entity.Department
	stats       []entity.DepartmentStats
	detail      *entity.Department
	seq         uint64
}

// NewDepartmentsStore construye el store vacío.
func NewDepartmentsStore(api DepartmentsAPI) *DepartmentsStore {
	return &DepartmentsStore{api: api, status: StatusIdle}
}

// DepartmentsSnapshot copia del estado para render.
type DepartmentsSnapshot struct {
	Status      Status
	Err         error
	Departments []entity.Department
	Stats       []entity.DepartmentStats
	Detail      *entity.Department
}

// Snapshot devuelve el estado actual por valor.
func (s *DepartmentsStore) Snapshot() DepartmentsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := DepartmentsSnapshot{Status: s.status, Err: s.err}
	if s.departments != nil {
		snap.Departments = make([]entity.Department, len(s.departments))
		copy(snap.Departments, s.departments)
	}
	if s.stats != nil {
		snap.Stats = make([]entity.DepartmentStats, len(s.stats))
		copy(snap.Stats, s.stats)
	}
	if s.detail != nil {
		d := *s.detail
		snap.Detail = &d
	}
	return snap
}

func (s *DepartmentsStore) beginList() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.status = StatusLoading
	s.err = nil
	return s.seq
}

func (s *DepartmentsStore) begin() {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = nil
	s.mu.Unlock()
}

// List reemplaza la colección completa.
func (s *DepartmentsStore) List(ctx context.Context) error {
	seq := s.beginList()
	departments, err := s.api.ListDepartments(ctx)

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
	s.departments = departments
	return nil
}

// GetByID puebla el slot de detalle.
func (s *DepartmentsStore) GetByID(ctx context.Context, id int) (*entity.Department, error) {
	s.begin()
	detail, err := s.api.GetDepartment(ctx, id)

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
func (s *DepartmentsStore) ClearDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = nil
}

// Create crea un departamento y lo incorpora a la colección residente.
func (s *DepartmentsStore) Create(ctx context.Context, in directory.DepartmentPayload) (*entity.Department, error) {
	s.begin()
	created, err := s.api.CreateDepartment(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	if s.departments != nil {
		s.departments = append(s.departments, *created)
	}
	return created, nil
}

// Update reemplaza un departamento y lo mezcla en la colección.
func (s *DepartmentsStore) Update(ctx context.Context, id int, in directory.DepartmentPayload) (*entity.Department, error) {
	s.begin()
	updated, err := s.api.UpdateDepartment(ctx, id, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	for i := range s.departments {
		if s.departments[i].ID == updated.ID {
			s.departments[i] = *updated
			break
		}
	}
	return updated, nil
}

// Delete elimina en el servicio; la colección no se toca hasta el próximo List.
func (s *DepartmentsStore) Delete(ctx context.Context, id int) error {
	s.begin()
	err := s.api.DeleteDepartment(ctx, id)

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

// Stats refresca las estadísticas por departamento.
func (s *DepartmentsStore) Stats(ctx context.Context) ([]entity.DepartmentStats, error) {
	s.begin()
	stats, err := s.api.DepartmentStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	s.stats = stats
	return stats, nil
}
