package store

import (
	"sort"
	"strings"

	"petcare/internal/domain/medevents"
	"petcare/internal/platform/dates"
)

// Tipos wire del store remoto, tal como los consume la app.

type Pet struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	BirthDate     dates.ISODate `json:"birth_date"`
	Photo         string        `json:"photo"`
	MedicalEvents []Category    `json:"medical_events"`
}

type Category struct {
	ID           string  `json:"id"`
	AnimalID     string  `json:"animal_id"`
	CategoryName string  `json:"category_name"`
	EventDetails []Event `json:"event_details"`
}

type Event struct {
	ID             string        `json:"id"`
	MedicalEventID string        `json:"medical_event_id"`
	EventName      string        `json:"event_name"`
	Date           dates.ISODate `json:"date"`
	NextDate       dates.ISODate `json:"next_date"`
	Notes          string        `json:"notes"`
}

// DefaultPhoto elige el asset cuando el animal no tiene foto.
// Type es texto libre; se compara case-insensitive.
func (p Pet) DefaultPhoto() string {
	switch strings.ToLower(p.Type) {
	case "cat":
		return "no-photo-cat.png"
	case "dog":
		return "no-photo-dog.png"
	default:
		return "no-photo.png"
	}
}

// DisplayPhoto: la foto subida, o el asset por defecto.
func (p Pet) DisplayPhoto() string {
	if p.Photo != "" {
		return p.Photo
	}
	return p.DefaultPhoto()
}

// SortCategories aplica el orden de presentación fijo
// (vaccine < prevention < check up < other, desconocidas al final).
func SortCategories(cats []Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return medevents.Rank(cats[i].CategoryName) < medevents.Rank(cats[j].CategoryName)
	})
}
