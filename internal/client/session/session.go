// Package session maneja el estado de autenticación del cliente:
// Anonymous hasta un login exitoso, Authenticated con la proyección
// {id, name, email}; nunca el hash.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"petcare/internal/client/cache"
	"petcare/internal/platform/httpclient"
	"petcare/internal/platform/logger"
)

// Chequeos locales: se rechazan antes de tocar la red.
var (
	ErrEmailRequired    = errors.New("please enter your email")
	ErrEmailInvalid     = errors.New("please enter correct email")
	ErrPasswordRequired = errors.New("please enter the password")
	ErrPasswordTooShort = errors.New("the password should have minimum 6 symbols")
	ErrNameRequired     = errors.New("please enter your name")
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthError es el rechazo del servicio de cuentas, con el mensaje que
// corresponde mostrar. Login fallido trae siempre el mismo texto, exista
// o no la cuenta.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

type Manager struct {
	mu   sync.RWMutex
	user *User

	http  *httpclient.Client
	cache *cache.Store // opcional; se limpia en SignOut
	log   logger.Logger
}

func New(authBaseURL string, timeout time.Duration, petCache *cache.Store, log logger.Logger) (*Manager, error) {
	hc, err := httpclient.NewWithBaseURL(authBaseURL, timeout)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.New(logger.Options{})
	}
	return &Manager{
		http:  hc,
		cache: petCache,
		log:   log,
	}, nil
}

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !emailRx.MatchString(strings.TrimSpace(email)) {
		return ErrEmailInvalid
	}
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn: Anonymous -> Authenticated.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	var resp struct {
		Message string `json:"message"`
		User    *User  `json:"user"`
	}

	err := m.http.DoJSON(ctx, http.MethodPost, "/login", nil,
		credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return asAuthError(err, "Login failed")
	}

	if resp.User == nil || resp.User.ID == "" {
		return errors.New("server did not return user")
	}

	m.mu.Lock()
	m.user = resp.User
	m.mu.Unlock()

	m.log.Info("signed in", map[string]any{"user_id": resp.User.ID})
	return nil
}

// SignUp registra y encadena un SignIn con las mismas credenciales:
// el registro en sí no abre sesión.
func (m *Manager) SignUp(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	err := m.http.DoJSON(ctx, http.MethodPost, "/register", nil,
		registration{Name: name, Email: email, Password: password}, nil)
	if err != nil {
		return asAuthError(err, "Registration failed")
	}

	return m.SignIn(ctx, email, password)
}

// SignOut es inmediato y sin red. Limpia también el cache de mascotas:
// el usuario siguiente no tiene por qué ver la lista del anterior.
func (m *Manager) SignOut() {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	if m.cache != nil {
		m.cache.Clear()
	}
}

func (m *Manager) Current() (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return User{}, false
	}
	return *m.user, true
}

func (m *Manager) Authenticated() bool {
	_, ok := m.Current()
	return ok
}

// asAuthError saca el mensaje del body {error} o {message} del servicio;
// si no hay nada usable, el fallback genérico.
func asAuthError(err error, fallback string) error {
	var he *httpclient.HTTPError
	if !errors.As(err, &he) {
		return errors.New(fallback)
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal([]byte(he.Body), &body)

	msg := body.Error
	if msg == "" {
		msg = body.Message
	}
	if msg == "" {
		msg = fallback
	}

	return &AuthError{Status: he.StatusCode, Message: msg}
}
