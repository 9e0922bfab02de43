package medevents

import (
	"time"

	"petcare/internal/platform/dates"
)

// Category agrupa los eventos médicos de un animal bajo un nombre
// ("vaccine", "prevention", "check up", "other").
type Category struct {
	ID           string
	AnimalID     string
	CategoryName string

	CreatedAt time.Time
}

// Event es un registro médico puntual dentro de una categoría.
// NextDate puede quedar en cero (= sin próxima fecha).
type Event struct {
	ID         string
	CategoryID string

	EventName string
	Date      dates.ISODate
	NextDate  dates.ISODate
	Notes     string

	CreatedAt time.Time
}

// CategoryDetail es una categoría con su lista de eventos en orden de creación.
type CategoryDetail struct {
	Category
	Events []Event
}
