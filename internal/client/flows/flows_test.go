package flows_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare/internal/client/cache"
	"petcare/internal/client/flows"
	"petcare/internal/client/store"
	"petcare/internal/router"
)

// Integración cliente completo contra el store in-memory real.
func setup(t *testing.T) (*flows.PetFlows, *cache.Store, *store.Client) {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)

	api, err := store.New(ts.URL, 5*time.Second, nil)
	require.NoError(t, err)

	c := cache.New(api, nil)
	return flows.NewPetFlows(api, c), c, api
}

func TestPetFlows_CreateReconcilesCache(t *testing.T) {
	f, c, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx))
	require.Empty(t, c.Pets())

	p, err := f.CreatePet(ctx, store.PetInput{Name: "Rex", Type: "dog", BirthDate: "2020-01-01"})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	// el cache ya refleja el alta sin re-leer la lista
	pets := c.Pets()
	require.Len(t, pets, 1)
	assert.Equal(t, p.ID, pets[0].ID)
	assert.Equal(t, "Rex", pets[0].Name)

	// y coincide con lo que devolvería el store
	require.NoError(t, c.Load(ctx))
	assert.Len(t, c.Pets(), 1)
}

func TestPetFlows_UpdateReconcilesCanonicalRecord(t *testing.T) {
	f, c, _ := setup(t)
	ctx := context.Background()

	p, err := f.CreatePet(ctx, store.PetInput{Name: "Milo", Type: "dog", BirthDate: "2021-06-15"})
	require.NoError(t, err)

	_, err = f.UpdatePet(ctx, p.ID, store.PetInput{Name: "Milo", Type: "cat", BirthDate: "2021-06-15"})
	require.NoError(t, err)

	pets := c.Pets()
	require.Len(t, pets, 1)
	assert.Equal(t, "cat", pets[0].Type)
	assert.Equal(t, "Milo", pets[0].Name)
}

func TestPetFlows_UpdateFailureLeavesCacheUntouched(t *testing.T) {
	f, c, _ := setup(t)
	ctx := context.Background()

	p, err := f.CreatePet(ctx, store.PetInput{Name: "Milo", Type: "dog", BirthDate: "2021-06-15"})
	require.NoError(t, err)

	// input inválido: no viaja nada y el cache no cambia
	_, err = f.UpdatePet(ctx, p.ID, store.PetInput{Name: "", Type: "cat", BirthDate: "2021-06-15"})
	require.ErrorIs(t, err, store.ErrMissingFields)

	pets := c.Pets()
	require.Len(t, pets, 1)
	assert.Equal(t, "dog", pets[0].Type)
}

func TestPetFlows_DeleteRemovesFromStoreAndCache(t *testing.T) {
	f, c, api := setup(t)
	ctx := context.Background()

	p, err := f.CreatePet(ctx, store.PetInput{Name: "Rex", Type: "dog", BirthDate: "2020-01-01"})
	require.NoError(t, err)

	require.NoError(t, f.DeletePet(ctx, p.ID))

	assert.Empty(t, c.Pets())

	remote, err := api.ListPets(ctx)
	require.NoError(t, err)
	assert.Empty(t, remote)
}

func TestEventLifecycle_ViaStoreClient(t *testing.T) {
	f, _, api := setup(t)
	ctx := context.Background()

	p, err := f.CreatePet(ctx, store.PetInput{Name: "Luna", Type: "cat", BirthDate: "2022-02-02"})
	require.NoError(t, err)

	full, err := api.GetPet(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, full.MedicalEvents, 4)
	catID := full.MedicalEvents[0].ID

	ev, err := api.CreateEvent(ctx, catID, store.EventInput{
		EventName: "Rabies",
		Date:      "2024-03-01",
		Notes:     "anual",
	})
	require.NoError(t, err)
	assert.Equal(t, catID, ev.MedicalEventID)
	assert.True(t, ev.NextDate.IsZero())

	// editar y re-leer la categoría
	_, err = api.UpdateEvent(ctx, ev.ID, store.EventInput{
		EventName: "Rabies booster",
		Date:      "2024-03-01",
		NextDate:  "2025-03-01",
	})
	require.NoError(t, err)

	cat, err := api.GetCategory(ctx, catID)
	require.NoError(t, err)
	require.Len(t, cat.EventDetails, 1)
	assert.Equal(t, "Rabies booster", cat.EventDetails[0].EventName)

	require.NoError(t, api.DeleteEvent(ctx, ev.ID))

	cat, err = api.GetCategory(ctx, catID)
	require.NoError(t, err)
	assert.Empty(t, cat.EventDetails)
}
