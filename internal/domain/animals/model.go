package animals

import (
	"time"

	"petcare/internal/platform/dates"
)

// Animal es el perfil de una mascota registrada.
// Type es texto libre ("Dog", "cat", "parrot"...); solo se compara
// case-insensitive del lado del cliente para elegir la foto por defecto.
type Animal struct {
	ID string

	Name      string
	Type      string
	BirthDate dates.ISODate
	Photo     string // URI o vacío

	CreatedAt time.Time
	UpdatedAt time.Time
}
