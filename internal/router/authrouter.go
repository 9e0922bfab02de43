package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"petcare/internal/domain/users"
	"petcare/internal/middleware"
)

type AuthOptions struct {
	Repo users.Repository
	Log  *zap.Logger
}

// NewAuthRouter arma el servicio de cuentas (/register, /login).
func NewAuthRouter(opts AuthOptions) http.Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	svc := users.NewService(opts.Repo)
	users.RegisterRoutes(r, svc, log)

	return r
}
