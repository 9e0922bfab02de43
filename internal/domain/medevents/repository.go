package medevents

import "context"

type Repository interface {
	CreateCategory(ctx context.Context, c Category) error
	GetCategoryByID(ctx context.Context, id string) (Category, error)
	ListCategoriesByAnimal(ctx context.Context, animalID string) ([]Category, error)
	DeleteCategoriesByAnimal(ctx context.Context, animalID string) error

	CreateEvent(ctx context.Context, e Event) error
	GetEventByID(ctx context.Context, id string) (Event, error)
	ListEventsByCategory(ctx context.Context, categoryID string) ([]Event, error)
	UpdateEvent(ctx context.Context, e Event) error
	DeleteEvent(ctx context.Context, id string) error
}
