package session

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/directorio-admin/internal/domain"
	"github.com/jhoicas/directorio-admin/internal/domain/entity"
	"github.com/jhoicas/directorio-admin/internal/infrastructure/directory"
)

// API contrato mínimo del facade que necesita la sesión.
type API interface {
	Login(ctx context.Context, creds directory.Credentials) (*directory.LoginResult, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

// Store sesión única del proceso: principal actual más el token opaco del
// servicio remoto. Inicializa vacía al arrancar; se limpia en el logout.
// Escriben solo Login/Logout; el facade lee el token en cada llamada.
type Store struct {
	mu        sync.RWMutex
	api       API
	principal *entity.Principal
	token     string
}

// New crea la sesión vacía. El facade se enlaza con Bind después de
// construirlo, porque el cliente del directorio necesita este Store
// como TokenSource.
func New() *Store {
	return &Store{}
}

// Bind enlaza el facade remoto.
func (s *Store) Bind(api API) {
	s.api = api
}

// Login autentica contra el servicio remoto. En éxito persiste principal y
// token por la vida del proceso; en fallo no hay cambio de estado y el error
// es terminal para ese intento (el usuario debe reenviar).
func (s *Store) Login(ctx context.Context, username, password string) (*entity.Principal, error) {
	res, err := s.api.Login(ctx, directory.Credentials{Username: username, Password: password})
	if err != nil {
		var aErr *domain.APIError
		if errors.As(err, &aErr) && aErr.Status == 401 {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	p := res.User
	s.mu.Lock()
	s.principal = &p
	s.token = res.Token
	s.mu.Unlock()
	return &p, nil
}

// Logout limpia principal y token incondicionalmente: aunque la invalidación
// remota falle, el usuario nunca queda atrapado sin poder cerrar sesión.
// El error remoto se devuelve solo para registro.
func (s *Store) Logout(ctx context.Context) error {
	var err error
	if s.api != nil {
		err = s.api.Logout(ctx)
	}
	s.mu.Lock()
	s.principal = nil
	s.token = ""
	s.mu.Unlock()
	return err
}

// Current lectura síncrona del principal activo (nil si no hay sesión).
// Devuelve una copia para que el llamador no pueda mutar el estado.
func (s *Store) Current() *entity.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return nil
	}
	p := *s.principal
	return &p
}

// Token devuelve el token de sesión opaco ("" si no hay).
// Implementa directory.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ChangePassword cambia la contraseña del principal autenticado.
func (s *Store) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if s.Current() == nil {
		return domain.ErrNoSession
	}
	return s.api.ChangePassword(ctx, oldPassword, newPassword)
}
