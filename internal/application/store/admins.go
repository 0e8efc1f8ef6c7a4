package store

import (
	"context"
	"sync"

	"github.com/jhoicas/directorio-admin/internal/domain/entity"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
)

// AdminsAPI contrato mínimo del facade para cuentas de administrador.
type AdminsAPI interface {
	ListAdmins(ctx context.Context) ([]entity.Admin, error)
	CreateAdmin(ctx context.Context, in directory.AdminPayload) (*entity.Admin, error)
	DeleteAdmin(ctx context.Context, id int) error
	SetUserPassword(ctx context.Context, userID int, newPassword string) error
}

// AdminsStore estado conocido de las cuentas de administrador.
type AdminsStore struct {
	api AdminsAPI

	mu     sync.Mutex
	status Status
	err    error
	admins []entity.Admin
	seq    uint64
}

// NewAdminsStore construye el store vacío.
func NewAdminsStore(api AdminsAPI) *AdminsStore {
	return &AdminsStore{api: api, status: StatusIdle}
}

// AdminsSnapshot copia del estado para render.
type AdminsSnapshot struct {
	Status Status
	Err    error
	Admins []entity.Admin
}

// Snapshot devuelve el estado actual por valor.
func (s *AdminsStore) Snapshot() AdminsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := AdminsSnapshot{Status: s.status, Err: s.err}
	if s.admins != nil {
		snap.Admins = make([]entity.Admin, len(s.admins))
		copy(snap.Admins, s.admins)
	}
	return snap
}

func (s *AdminsStore) beginList() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.status = StatusLoading
	s.err = nil
	return s.seq
}

func (s *AdminsStore) begin() {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = nil
	s.mu.Unlock()
}

// List reemplaza la colección completa.
func (s *AdminsStore) List(ctx context.Context) error {
	seq := s.beginList()
	admins, err := s.api.ListAdmins(ctx)

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
	s.admins = admins
	return nil
}

// Create crea una cuenta de administrador y la incorpora a la colección.
func (s *AdminsStore) Create(ctx context.Context, in directory.AdminPayload) (*entity.Admin, error) {
	s.begin()
	created, err := s.api.CreateAdmin(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return nil, err
	}
	s.status = StatusLoaded
	s.err = nil
	if s.admins != nil {
		s.admins = append(s.admins, *created)
	}
	return created, nil
}

// Delete elimina en el servicio; el llamador re-lista para reflejar la baja.
func (s *AdminsStore) Delete(ctx context.Context, id int) error {
	s.begin()
	err := s.api.DeleteAdmin(ctx, id)

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

// SetUserPassword fija la contraseña de otra cuenta; no toca estado local
// más allá de registrar el resultado.
func (s *AdminsStore) SetUserPassword(ctx context.Context, userID int, newPassword string) error {
	s.begin()
	err := s.api.SetUserPassword(ctx, userID, newPassword)

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
