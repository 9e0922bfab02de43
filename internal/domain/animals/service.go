package animals

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

// Input cubre alta y reemplazo completo: name, type y birth_date
// son obligatorios, photo puede venir vacío.
type Input struct {
	Name      string
	Type      string
	BirthDate dates.ISODate
	Photo     string
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Type) == "" {
		return ErrInvalidInput
	}
	if in.BirthDate.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (Animal, error) {
	if err := in.validate(); err != nil {
		return Animal{}, err
	}

	now := s.now()
	a := Animal{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Type:      strings.TrimSpace(in.Type),
		BirthDate: in.BirthDate,
		Photo:     strings.TrimSpace(in.Photo),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

// Update reemplaza todos los campos y devuelve el registro canónico.
func (s *Service) Update(ctx context.Context, id string, in Input) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return Animal{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Type = strings.TrimSpace(in.Type)
	current.BirthDate = in.BirthDate
	current.Photo = strings.TrimSpace(in.Photo)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Animal{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
