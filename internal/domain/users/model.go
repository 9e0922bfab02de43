package users

import "time"

// User es la cuenta persistida. PasswordHash es bcrypt con salt por registro;
// nunca sale en ninguna respuesta.
type User struct {
	ID           string
	Name         string
	Email        string // único, normalizado a minúsculas
	PasswordHash string

	CreatedAt time.Time
}

// Projection es lo único que guarda la sesión del cliente.
type Projection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Projection() Projection {
	return Projection{ID: u.ID, Name: u.Name, Email: u.Email}
}
