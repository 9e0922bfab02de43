package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	// FindByEmail busca por email ya normalizado. ErrNotFound si no existe.
	FindByEmail(ctx context.Context, email string) (User, error)
}
