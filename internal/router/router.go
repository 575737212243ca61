package router

import (
	"database/sql"
	"net/http"

	_ "vet-clinic-records/docs"
	"vet-clinic-records/internal/adapters/password"
	mem "vet-clinic-records/internal/adapters/storage/memory"
	pg "vet-clinic-records/internal/adapters/storage/postgres"
	"vet-clinic-records/internal/domain/animals"
	"vet-clinic-records/internal/domain/clients"
	"vet-clinic-records/internal/domain/pets"
	"vet-clinic-records/internal/domain/users"
	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/ports/auth"
	"vet-clinic-records/internal/ports/tx"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger          logger.Logger
	PasswordEncoder auth.PasswordEncoder // nil => bcrypt con costo default
}

type repos struct {
	animals animals.Repository
	users   users.Repository
	clients clients.Repository
	pets    pets.Repository
	tx      tx.Transactor
}

func newRepos(db *sql.DB) repos {
	if db != nil {
		return repos{
			animals: pg.NewAnimalsRepo(db),
			users:   pg.NewUsersRepo(db),
			clients: pg.NewClientsRepo(db),
			pets:    pg.NewPetsRepo(db),
			tx:      pg.NewTransactor(db),
		}
	}
	return repos{
		animals: mem.NewAnimalRepo(),
		users:   mem.NewUserRepo(),
		clients: mem.NewClientRepo(),
		pets:    mem.NewPetRepo(),
		tx:      mem.NewTransactor(),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	encoder := opts.PasswordEncoder
	if encoder == nil {
		encoder = password.NewBcryptEncoder(0)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	rp := newRepos(opts.DB)

	// Services por módulo
	animalsSvc := animals.NewService(rp.animals, rp.tx, log)
	usersSvc := users.NewService(rp.users, encoder, rp.tx, log)
	clientsSvc := clients.NewService(rp.clients, usersSvc, rp.tx, log)
	petsSvc := pets.NewService(rp.pets, animalsSvc, clientsSvc, rp.tx, log)

	// Rutas por módulo; todas requieren principal
	r.Group(func(ar chi.Router) {
		ar.Use(middleware.RequireAuth)

		animals.RegisterRoutes(ar, animalsSvc)
		users.RegisterRoutes(ar, usersSvc)
		clients.RegisterRoutes(ar, clientsSvc)
		pets.RegisterRoutes(ar, petsSvc)
	})

	return r
}
