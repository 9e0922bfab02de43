package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare/internal/client/cache"
	"petcare/internal/client/store"
)

type fakeLister struct {
	pets []store.Pet
	err  error
}

func (f *fakeLister) ListPets(ctx context.Context) ([]store.Pet, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pets, nil
}

func TestLoad_ReplacesSnapshot(t *testing.T) {
	api := &fakeLister{pets: []store.Pet{{ID: "a", Name: "Rex"}, {ID: "b", Name: "Luna"}}}
	s := cache.New(api, nil)

	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.Pets(), 2)
	assert.False(t, s.Loading())

	api.pets = []store.Pet{{ID: "b", Name: "Luna"}}
	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.Pets(), 1)
}

func TestLoad_FailureKeepsPreviousSnapshot(t *testing.T) {
	api := &fakeLister{pets: []store.Pet{{ID: "a", Name: "Rex"}}}
	s := cache.New(api, nil)
	require.NoError(t, s.Load(context.Background()))

	api.err = errors.New("store down")
	err := s.Load(context.Background())
	require.Error(t, err)

	// falla abierto: el snapshot anterior sigue visible
	assert.Len(t, s.Pets(), 1)
	assert.Equal(t, "Rex", s.Pets()[0].Name)
	assert.False(t, s.Loading())
}

func TestApplyCreateUpdateDelete(t *testing.T) {
	s := cache.New(&fakeLister{}, nil)

	s.ApplyCreate(store.Pet{ID: "a", Name: "Rex", Type: "dog"})
	s.ApplyCreate(store.Pet{ID: "b", Name: "Luna", Type: "cat"})
	require.Len(t, s.Pets(), 2)

	s.ApplyUpdate(store.Pet{ID: "a", Name: "Rex", Type: "cat"})
	assert.Equal(t, "cat", s.Pets()[0].Type)

	// update de un id desconocido no toca nada
	s.ApplyUpdate(store.Pet{ID: "zzz", Name: "Fantasma"})
	assert.Len(t, s.Pets(), 2)

	s.ApplyDelete("a")
	require.Len(t, s.Pets(), 1)
	assert.Equal(t, "b", s.Pets()[0].ID)

	// delete de un id ausente es no-op
	s.ApplyDelete("a")
	assert.Len(t, s.Pets(), 1)
}

func TestClear_EmptiesSnapshot(t *testing.T) {
	s := cache.New(&fakeLister{}, nil)
	s.ApplyCreate(store.Pet{ID: "a"})

	s.Clear()
	assert.Empty(t, s.Pets())
}

func TestPets_ReturnsCopy(t *testing.T) {
	s := cache.New(&fakeLister{}, nil)
	s.ApplyCreate(store.Pet{ID: "a", Name: "Rex"})

	snap := s.Pets()
	snap[0].Name = "mutado"

	assert.Equal(t, "Rex", s.Pets()[0].Name)
}
