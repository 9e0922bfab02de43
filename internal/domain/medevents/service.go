package medevents

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"petcare/internal/platform/dates"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// SeedStandard crea las cuatro categorías estándar para un animal recién creado.
// El cliente nunca crea categorías; direcciona eventos por id de categoría,
// así que los ids tienen que existir desde el alta del animal.
func (s *Service) SeedStandard(ctx context.Context, animalID string) ([]Category, error) {
	if strings.TrimSpace(animalID) == "" {
		return nil, ErrInvalidInput
	}

	now := s.now()
	out := make([]Category, 0, 4)
	for _, name := range StandardCategories() {
		c := Category{
			ID:           uuid.NewString(),
			AnimalID:     animalID,
			CategoryName: name,
			CreatedAt:    now,
		}
		if err := s.repo.CreateCategory(ctx, c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Service) GetCategory(ctx context.Context, id string) (CategoryDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CategoryDetail{}, ErrInvalidInput
	}

	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return CategoryDetail{}, err
	}

	evs, err := s.repo.ListEventsByCategory(ctx, id)
	if err != nil {
		return CategoryDetail{}, err
	}

	return CategoryDetail{Category: c, Events: evs}, nil
}

// ListByAnimal devuelve las categorías del animal con sus eventos,
// ya en el orden de presentación fijo.
func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]CategoryDetail, error) {
	cats, err := s.repo.ListCategoriesByAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryDetail, 0, len(cats))
	for _, c := range cats {
		evs, err := s.repo.ListEventsByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryDetail{Category: c, Events: evs})
	}

	SortCategories(out)
	return out, nil
}

// RemoveForAnimal borra categorías y eventos al eliminar un animal.
func (s *Service) RemoveForAnimal(ctx context.Context, animalID string) error {
	if strings.TrimSpace(animalID) == "" {
		return ErrInvalidInput
	}
	return s.repo.DeleteCategoriesByAnimal(ctx, animalID)
}

type EventInput struct {
	EventName string
	Date      dates.ISODate
	NextDate  dates.ISODate
	Notes     string
}

func (in EventInput) validate() error {
	if strings.TrimSpace(in.EventName) == "" {
		return ErrInvalidInput
	}
	if in.Date.IsZero() {
		return ErrInvalidInput
	}
	// next_date no se valida contra date: el orden queda permisivo a propósito.
	return nil
}

func (s *Service) CreateEvent(ctx context.Context, categoryID string, in EventInput) (Event, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return Event{}, ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return Event{}, err
	}

	// El evento cuelga de una categoría existente.
	if _, err := s.repo.GetCategoryByID(ctx, categoryID); err != nil {
		return Event{}, err
	}

	e := Event{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		EventName:  strings.TrimSpace(in.EventName),
		Date:       in.Date,
		NextDate:   in.NextDate,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  s.now(),
	}

	if err := s.repo.CreateEvent(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) GetEvent(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}
	return s.repo.GetEventByID(ctx, id)
}

// UpdateEvent es reemplazo completo: el cliente manda siempre los cuatro campos.
func (s *Service) UpdateEvent(ctx context.Context, id string, in EventInput) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return Event{}, err
	}

	current, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return Event{}, err
	}

	current.EventName = strings.TrimSpace(in.EventName)
	current.Date = in.Date
	current.NextDate = in.NextDate
	current.Notes = strings.TrimSpace(in.Notes)

	if err := s.repo.UpdateEvent(ctx, current); err != nil {
		return Event{}, err
	}
	return current, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.DeleteEvent(ctx, id)
}
