package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-records/internal/platform/apperr"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/ports/storage"
	"vet-clinic-records/internal/ports/tx"

	"github.com/google/uuid"
)

var (
	errWrongID       = apperr.NotFound("wrong id")
	errSpeciesExists = apperr.InvalidData("species exists")
	errNoSpecies     = apperr.InvalidData("species cannot be empty")
)

type Service struct {
	repo Repository
	tx   tx.Transactor
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, transactor tx.Transactor, log logger.Logger) *Service {
	if transactor == nil {
		transactor = tx.None
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		tx:   transactor,
		log:  log.With(map[string]any{"service": "animals"}),
		now:  time.Now,
	}
}

type CreateInput struct {
	Species string
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if errors.Is(err, storage.ErrNotFound) {
		return Animal{}, errWrongID
	}
	if err != nil {
		return Animal{}, fmt.Errorf("get animal: %w", err)
	}
	return a, nil
}

// Create rechaza especies repetidas. La comparación es exacta (case-sensitive).
func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	species := strings.TrimSpace(in.Species)
	if species == "" {
		return Animal{}, errNoSpecies
	}

	a := Animal{
		ID:        uuid.NewString(),
		Species:   species,
		CreatedAt: s.now(),
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.repo.GetBySpecies(ctx, species)
		switch {
		case err == nil:
			return errSpeciesExists
		case !errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("find animal by species: %w", err)
		}

		if err := s.repo.Create(ctx, a); err != nil {
			// otra request ganó la carrera entre el check y el insert
			if errors.Is(err, storage.ErrDuplicate) {
				return errSpeciesExists
			}
			return fmt.Errorf("create animal: %w", err)
		}
		return nil
	})
	if err != nil {
		return Animal{}, err
	}

	logger.FromContext(ctx, s.log).Info("animal created", map[string]any{
		"animal_id": a.ID,
		"species":   a.Species,
	})
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errWrongID
			}
			return fmt.Errorf("delete animal: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx, s.log).Info("animal deleted", map[string]any{"animal_id": id})
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]Animal, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return items, nil
}
