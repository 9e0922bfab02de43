// Package cache mantiene la lista de mascotas del proceso cliente,
// reconciliada explícitamente después de cada mutación.
package cache

import (
	"context"
	"sync"

	"petcare/internal/client/store"
	"petcare/internal/platform/logger"
)

// Lister es lo único que el cache necesita del cliente del store.
type Lister interface {
	ListPets(ctx context.Context) ([]store.Pet, error)
}

// Store es un contenedor inyectable (nada de globals): cada test
// construye el suyo.
type Store struct {
	mu      sync.RWMutex
	pets    []store.Pet
	loading bool

	api Lister
	log logger.Logger
}

func New(api Lister, log logger.Logger) *Store {
	if log == nil {
		log = logger.New(logger.Options{})
	}
	return &Store{
		api: api,
		log: log,
	}
}

// Load reemplaza el cache entero con lo que devuelva el store.
// Falla abierto: ante error queda el valor anterior, no se vacía.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	pets, err := s.api.ListPets(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.log.Error("pet list load failed, keeping previous cache", map[string]any{"err": err.Error()})
		return err
	}

	s.pets = pets
	return nil
}

// Loading permite a las vistas distinguir "vacío porque está cargando"
// de "vacío confirmado".
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Pets devuelve una copia del snapshot actual.
func (s *Store) Pets() []store.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Pet, len(s.pets))
	copy(out, s.pets)
	return out
}

// ApplyCreate agrega la mascota que devolvió el store (id ya asignado).
// Se confía en que el id es nuevo; no se dedupe.
func (s *Store) ApplyCreate(p store.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets = append(s.pets, p)
}

// ApplyUpdate reemplaza la entrada con el mismo id. Si no está, no toca
// nada pero lo deja logueado: puede ser un write perdido y queremos verlo.
func (s *Store) ApplyUpdate(p store.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pets {
		if s.pets[i].ID == p.ID {
			s.pets[i] = p
			return
		}
	}

	s.log.Warn("update for pet id not in cache, ignored", map[string]any{"pet_id": p.ID})
}

// ApplyDelete saca la entrada por id; no-op si no está.
func (s *Store) ApplyDelete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.pets[:0]
	for _, p := range s.pets {
		if p.ID != id {
			out = append(out, p)
		}
	}
	s.pets = out
}

// Clear vacía el cache. Lo llama el sign-out: las mascotas del usuario
// anterior no deben quedar visibles para el siguiente.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pets = nil
}
