package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrEmailTaken   = errors.New("email already registered")

	// ErrInvalidCredentials cubre tanto "no existe el usuario" como
	// "password incorrecto": no distinguimos para no filtrar qué cuentas existen.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrCorruptedRecord: el registro guardado no tiene hash usable.
	// Es un problema de integridad del store, no un error del cliente.
	ErrCorruptedRecord = errors.New("user record corrupted")
)

const bcryptCost = 10

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

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register da de alta una cuenta. Chequea unicidad de email antes de hashear.
func (s *Service) Register(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, ErrEmailTaken
	case !errors.Is(err, ErrNotFound):
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		// Carrera entre FindByEmail y Create: el índice único decide.
		if errors.Is(err, ErrEmailTaken) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

// Login verifica credenciales contra el hash guardado.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if strings.TrimSpace(u.PasswordHash) == "" {
		return User{}, ErrCorruptedRecord
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
