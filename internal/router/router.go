package router

import (
	"net/http"
	"sync"

	_ "pet-registry/docs" // registra la doc OpenAPI en swag

	mem "pet-registry/internal/adapters/storage/memory"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/users"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/validation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil = descarta logs

	// RateLimitRPS 0 desactiva el limitador.
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID(log))
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))
	if opts.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Stores in-memory: un asignador de ids por entidad y un guard compartido
	// por los dos services (las operaciones tocan ambos stores).
	var guard sync.RWMutex
	petsSvc := pets.NewService(mem.NewPetRepo(), mem.NewSequence(), &guard)
	usersSvc := users.NewService(mem.NewUserRepo(), mem.NewSequence(), petsSvc, &guard)
	petsSvc.UseOwners(usersSvc)

	v := validation.New()

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, v, log)
	pets.RegisterRoutes(r, petsSvc, v, log)

	return r
}
