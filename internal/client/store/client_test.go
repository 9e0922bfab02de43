package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare/internal/client/store"
)

func newClient(t *testing.T, h http.Handler) (*store.Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := store.New(ts.URL, 5*time.Second, nil)
	require.NoError(t, err)
	return c, ts
}

func TestCreatePet_ValidatesBeforeNetwork(t *testing.T) {
	var hits atomic.Int64
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	cases := []store.PetInput{
		{Type: "dog", BirthDate: "2020-01-01"},
		{Name: "Rex", BirthDate: "2020-01-01"},
		{Name: "Rex", Type: "dog"},
	}
	for _, in := range cases {
		_, err := c.CreatePet(context.Background(), in)
		assert.ErrorIs(t, err, store.ErrMissingFields)
	}

	_, err := c.CreatePet(context.Background(), store.PetInput{
		Name: "Rex", Type: "dog", BirthDate: "no-es-fecha",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrMissingFields)

	// ningún request salió
	assert.Zero(t, hits.Load())
}

func TestCreateEvent_ValidatesBeforeNetwork(t *testing.T) {
	var hits atomic.Int64
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := c.CreateEvent(context.Background(), "cat-1", store.EventInput{Date: "2024-01-01"})
	assert.ErrorIs(t, err, store.ErrMissingNameOrDate)

	_, err = c.CreateEvent(context.Background(), "cat-1", store.EventInput{EventName: "Rabies"})
	assert.ErrorIs(t, err, store.ErrMissingNameOrDate)

	assert.Zero(t, hits.Load())
}

func TestCreatePet_DuplicateSubmitRejectedWhileInFlight(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(store.Pet{ID: "p-1", Name: "Rex"})
	}))

	in := store.PetInput{Name: "Rex", Type: "dog", BirthDate: "2020-01-01"}

	firstErr := make(chan error, 1)
	go func() {
		_, err := c.CreatePet(context.Background(), in)
		firstErr <- err
	}()

	// con el primer submit dentro del servidor, el guard está tomado
	<-started
	_, err := c.CreatePet(context.Background(), in)
	assert.ErrorIs(t, err, store.ErrInFlight)

	close(release)
	require.NoError(t, <-firstErr)

	// terminado el primero, el guard se libera
	_, err = c.CreatePet(context.Background(), in)
	assert.NoError(t, err)
}

func TestInFlightGuard_IsPerOperation(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/v1/animal/a" {
			started <- struct{}{}
			<-release
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	done := make(chan error, 1)
	go func() { done <- c.DeletePet(context.Background(), "a") }()

	<-started
	assert.ErrorIs(t, c.DeletePet(context.Background(), "a"), store.ErrInFlight)

	// un delete de OTRA mascota no choca con el guard de "a"
	assert.NoError(t, c.DeletePet(context.Background(), "b"))

	close(release)
	require.NoError(t, <-done)
}

func TestGetPet_SortsCategoriesForPresentation(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(store.Pet{
			ID:   "p-1",
			Name: "Rex",
			MedicalEvents: []store.Category{
				{ID: "c4", CategoryName: "other"},
				{ID: "c3", CategoryName: "check up"},
				{ID: "c1", CategoryName: "vaccine"},
				{ID: "c2", CategoryName: "prevention"},
			},
		})
	}))

	p, err := c.GetPet(context.Background(), "p-1")
	require.NoError(t, err)

	var names []string
	for _, cat := range p.MedicalEvents {
		names = append(names, cat.CategoryName)
	}
	assert.Equal(t, []string{"vaccine", "prevention", "check up", "other"}, names)
}

func TestMutations_RespectContextCancellation(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-release
	}))
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		err := c.DeletePet(ctx, "a")
		done <- err
	}()

	<-started
	cancel()

	err := <-done
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
