package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "petcare/internal/adapters/storage/memory"
	pg "petcare/internal/adapters/storage/postgres"
	"petcare/internal/domain/animals"
	"petcare/internal/domain/medevents"
	"petcare/internal/middleware"
	"petcare/internal/platform/logger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Log logger.Logger
}

// NewRouter arma el servidor del store de animales (/v1/animal, /v1/medical_events, /v1/event).
func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(middleware.Metrics)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", middleware.MetricsHandler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		animalRepo animals.Repository
		medRepo    medevents.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to in-memory", map[string]any{"err": err.Error()})
			}
		}
	}

	if db != nil {
		animalRepo = pg.NewAnimalsRepo(db)
		medRepo = pg.NewMedEventsRepo(db)
	} else {
		animalRepo = mem.NewAnimalsRepo()
		medRepo = mem.NewMedEventsRepo()
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo)
	medSvc := medevents.NewService(medRepo)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc, medSvc)
	medevents.RegisterRoutes(r, medSvc)

	return r
}
