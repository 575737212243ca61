package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/animals"
	"vet-clinic-records/internal/domain/clients"
	"vet-clinic-records/internal/platform/apperr"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/ports/auth"
	"vet-clinic-records/internal/ports/storage"
	"vet-clinic-records/internal/ports/tx"

	"github.com/google/uuid"
)

// Mismo mensaje para "no existe" y "no autorizado": no se filtra la existencia.
const wrongIDMsg = "wrong id"

var (
	errWrongID       = apperr.NotFound(wrongIDMsg)
	errNoName        = apperr.InvalidData("name cannot be null")
	errNoBirthDate   = apperr.InvalidData("birth date cannot be null")
	errWrongAnimalID = apperr.InvalidData("wrong animal id")
	errWrongClientID = apperr.InvalidData("wrong client id")
)

type AnimalLookup interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
}

// ClientDirectory es lo que pets necesita de clients. *clients.Service lo cumple.
type ClientDirectory interface {
	GetByID(ctx context.Context, id string) (clients.Client, error)
	LinkedUsername(ctx context.Context, c clients.Client) (string, bool, error)
}

type Service struct {
	repo    Repository
	animals AnimalLookup
	clients ClientDirectory
	tx      tx.Transactor
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, animalLookup AnimalLookup, clientDir ClientDirectory, transactor tx.Transactor, log logger.Logger) *Service {
	if transactor == nil {
		transactor = tx.None
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		animals: animalLookup,
		clients: clientDir,
		tx:      transactor,
		log:     log.With(map[string]any{"service": "pets"}),
		now:     time.Now,
	}
}

type CreateInput struct {
	Name      string
	BirthDate *time.Time
	AnimalID  string
	ClientID  string
}

// ListAll devuelve solo las mascotas que el principal puede ver; el resto se omite sin error.
func (s *Service) ListAll(ctx context.Context, p auth.Principal) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	if !p.IsClientScoped() {
		return items, nil
	}

	// cache por request: varios pets suelen compartir client
	allowed := map[string]bool{}
	out := make([]Pet, 0, len(items))
	for _, pet := range items {
		ok, seen := allowed[pet.ClientID]
		if !seen {
			ok, err = s.authorizedByClientID(ctx, p, pet.ClientID)
			if err != nil {
				return nil, err
			}
			allowed[pet.ClientID] = ok
		}
		if ok {
			out = append(out, pet)
		}
	}
	return out, nil
}

// GetByID devuelve NotFound si no existe y AccessDenied (con el mismo mensaje) si
// existe pero el principal no puede verla.
func (s *Service) GetByID(ctx context.Context, p auth.Principal, id string) (Pet, error) {
	pet, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if errors.Is(err, storage.ErrNotFound) {
		return Pet{}, errWrongID
	}
	if err != nil {
		return Pet{}, fmt.Errorf("get pet: %w", err)
	}

	ok, err := s.authorizedByClientID(ctx, p, pet.ClientID)
	if err != nil {
		return Pet{}, err
	}
	if !ok {
		logger.FromContext(ctx, s.log).Error("user is not authorized to access pet", map[string]any{
			"username": p.Username,
			"pet_id":   pet.ID,
		})
		return Pet{}, apperr.AccessDenied(wrongIDMsg)
	}
	return pet, nil
}

// Create valida en orden: name, birth date, animal, client y por último autorización.
func (s *Service) Create(ctx context.Context, p auth.Principal, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, errNoName
	}
	if in.BirthDate == nil || in.BirthDate.IsZero() {
		return Pet{}, errNoBirthDate
	}

	var created Pet
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.animals.GetByID(ctx, in.AnimalID)
		if err != nil {
			if isNotFound(err) {
				return errWrongAnimalID
			}
			return err
		}
		c, err := s.clients.GetByID(ctx, in.ClientID)
		if err != nil {
			if isNotFound(err) {
				return errWrongClientID
			}
			return err
		}

		ok, err := s.authorized(ctx, p, c)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.AccessDenied("user don't have access to this pet")
		}

		pet := Pet{
			ID:        uuid.NewString(),
			Name:      name,
			BirthDate: dateOnly(*in.BirthDate),
			AnimalID:  a.ID,
			ClientID:  c.ID,
			CreatedAt: s.now(),
		}
		if err := s.repo.Create(ctx, pet); err != nil {
			return fmt.Errorf("create pet: %w", err)
		}
		created = pet
		return nil
	})
	if err != nil {
		return Pet{}, err
	}

	logger.FromContext(ctx, s.log).Info("pet created", map[string]any{
		"pet_id":   created.ID,
		"username": p.Username,
	})
	return created, nil
}

// Delete no recibe principal ni chequea ownership; la ruta HTTP solo exige un principal autenticado.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errWrongID
			}
			return fmt.Errorf("get pet: %w", err)
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errWrongID
			}
			return fmt.Errorf("delete pet: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx, s.log).Info("pet deleted", map[string]any{"pet_id": id})
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, apperr.ErrNotFound) || errors.Is(err, storage.ErrNotFound)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
