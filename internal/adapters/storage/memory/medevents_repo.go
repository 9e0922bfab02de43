package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petcare/internal/domain/medevents"
)

type medEventsRepo struct {
	mu         sync.RWMutex
	categories map[string]medevents.Category
	events     map[string]medevents.Event
}

func NewMedEventsRepo() medevents.Repository {
	return &medEventsRepo{
		categories: make(map[string]medevents.Category),
		events:     make(map[string]medevents.Event),
	}
}

func (r *medEventsRepo) CreateCategory(ctx context.Context, c medevents.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("category id required")
	}
	if _, exists := r.categories[c.ID]; exists {
		return errors.New("category already exists")
	}
	r.categories[c.ID] = c
	return nil
}

func (r *medEventsRepo) GetCategoryByID(ctx context.Context, id string) (medevents.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return medevents.Category{}, medevents.ErrNotFound
	}
	return c, nil
}

func (r *medEventsRepo) ListCategoriesByAnimal(ctx context.Context, animalID string) ([]medevents.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medevents.Category, 0)
	for _, c := range r.categories {
		if c.AnimalID == animalID {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *medEventsRepo) DeleteCategoriesByAnimal(ctx context.Context, animalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.categories {
		if c.AnimalID != animalID {
			continue
		}
		delete(r.categories, id)
		for eid, e := range r.events {
			if e.CategoryID == id {
				delete(r.events, eid)
			}
		}
	}
	return nil
}

func (r *medEventsRepo) CreateEvent(ctx context.Context, e medevents.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id required")
	}
	if _, exists := r.events[e.ID]; exists {
		return errors.New("event already exists")
	}
	r.events[e.ID] = e
	return nil
}

func (r *medEventsRepo) GetEventByID(ctx context.Context, id string) (medevents.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return medevents.Event{}, medevents.ErrNotFound
	}
	return e, nil
}

func (r *medEventsRepo) ListEventsByCategory(ctx context.Context, categoryID string) ([]medevents.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medevents.Event, 0)
	for _, e := range r.events {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}

	// Orden de creación, como los lista la vista de categoría
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *medEventsRepo) UpdateEvent(ctx context.Context, e medevents.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[e.ID]; !exists {
		return medevents.ErrNotFound
	}
	r.events[e.ID] = e
	return nil
}

func (r *medEventsRepo) DeleteEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[id]; !exists {
		return medevents.ErrNotFound
	}
	delete(r.events, id)
	return nil
}
