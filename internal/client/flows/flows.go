// Package flows ata cada mutación de mascota a su paso de reconciliación:
// round trip al store y, solo si salió bien, ajuste del cache local.
package flows

import (
	"context"

	"petcare/internal/client/cache"
	"petcare/internal/client/store"
)

type PetFlows struct {
	api   *store.Client
	cache *cache.Store
}

func NewPetFlows(api *store.Client, c *cache.Store) *PetFlows {
	return &PetFlows{api: api, cache: c}
}

// CreatePet crea en el store y agrega al cache la respuesta canónica
// (el servidor asigna el id).
func (f *PetFlows) CreatePet(ctx context.Context, in store.PetInput) (store.Pet, error) {
	p, err := f.api.CreatePet(ctx, in)
	if err != nil {
		return store.Pet{}, err
	}
	f.cache.ApplyCreate(p)
	return p, nil
}

// UpdatePet reemplaza campos en el store y reconcilia el cache con el
// registro canónico que devuelve el servidor.
func (f *PetFlows) UpdatePet(ctx context.Context, id string, in store.PetInput) (store.Pet, error) {
	p, err := f.api.UpdatePet(ctx, id, in)
	if err != nil {
		return store.Pet{}, err
	}
	f.cache.ApplyUpdate(p)
	return p, nil
}

// DeletePet borra en el store y saca la entrada del cache. La vista de
// detalle no puede quedarse mostrando una mascota borrada: el caller navega
// de vuelta a la lista.
func (f *PetFlows) DeletePet(ctx context.Context, id string) error {
	if err := f.api.DeletePet(ctx, id); err != nil {
		return err
	}
	f.cache.ApplyDelete(id)
	return nil
}

// Los flujos de eventos no reconcilian nada localmente: al crear/editar/borrar
// un evento el caller vuelve a la vista de categoría, que re-lee del store.
// Usan store.Client directo.
