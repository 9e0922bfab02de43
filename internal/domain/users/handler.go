package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger) {
	r.Post("/register", registerHandler(svc, log))
	r.Post("/login", loginHandler(svc, log))
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registeredUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func registerHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		u, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailTaken):
				writeError(w, http.StatusBadRequest, "User with this email already exists")
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Name, email and password are required")
			default:
				log.Error("registration failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		log.Info("new user registered", zap.String("email", u.Email))

		// El hash jamás viaja en la respuesta.
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "User created successfully",
			"user":    registeredUser{Name: u.Name, Email: u.Email},
		})
	}
}

func loginHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Email and password are required")
			case errors.Is(err, ErrInvalidCredentials):
				// Mismo mensaje y status para "no existe" y "password mal".
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			case errors.Is(err, ErrCorruptedRecord):
				log.Error("stored user record has no usable password hash", zap.String("email", req.Email))
				writeError(w, http.StatusInternalServerError, "User data corrupted (no password hash)")
			default:
				log.Error("login failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		log.Info("login successful", zap.String("user_id", u.ID))

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Login successful",
			"user":    u.Projection(),
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (animals/medevents/users) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
