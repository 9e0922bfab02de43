package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layout es el formato de calendario que viaja por la API (ISO 8601, solo fecha).
const Layout = "2006-01-02"

// ISODate es una fecha de calendario sin hora.
// El cero se serializa como "" (los eventos permiten next_date vacío = "ninguna").
type ISODate struct {
	time.Time
}

// Parse valida una fecha YYYY-MM-DD. Cadena vacía => fecha cero, sin error.
func Parse(s string) (ISODate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ISODate{}, nil
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return ISODate{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	return ISODate{t}, nil
}

func New(year int, month time.Month, day int) ISODate {
	return ISODate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d ISODate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

func (d ISODate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *ISODate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = ISODate{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// FormattedDate devuelve la fecha para mostrar, tipo "2 January 2006".
// Fecha cero => "" (la UI muestra el campo en blanco).
func FormattedDate(d ISODate) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", d.Day(), d.Month().String(), d.Year())
}

// Age calcula la edad en años y meses respecto de hoy: "3 y. 2 m." o "5 m.".
func Age(birth ISODate) string {
	return AgeAt(birth, time.Now())
}

// AgeAt existe para que los tests fijen "hoy".
func AgeAt(birth ISODate, today time.Time) string {
	if birth.IsZero() {
		return ""
	}

	years := today.Year() - birth.Year()
	months := int(today.Month()) - int(birth.Month())
	days := today.Day() - birth.Day()

	if days < 0 {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}

	if years <= 0 {
		return fmt.Sprintf("%d m.", months)
	}

	out := fmt.Sprintf("%d y.", years)
	if months > 0 {
		out += fmt.Sprintf(" %d m.", months)
	}
	return out
}
