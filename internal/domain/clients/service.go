package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-records/internal/domain/users"
	"vet-clinic-records/internal/platform/apperr"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/ports/storage"
	"vet-clinic-records/internal/ports/tx"

	"github.com/google/uuid"
)

var (
	errWrongID       = apperr.NotFound("wrong id")
	errMissingFields = apperr.InvalidData("name and surname should not be null")
)

// UserLookup es lo que clients necesita de users. *users.Service lo cumple.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (users.User, error)
	GetByUsername(ctx context.Context, username string) (users.User, error)
}

type Service struct {
	repo  Repository
	users UserLookup
	tx    tx.Transactor
	log   logger.Logger
	now   func() time.Time
}

func NewService(repo Repository, userLookup UserLookup, transactor tx.Transactor, log logger.Logger) *Service {
	if transactor == nil {
		transactor = tx.None
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		users: userLookup,
		tx:    transactor,
		log:   log.With(map[string]any{"service": "clients"}),
		now:   time.Now,
	}
}

type CreateInput struct {
	Name    string
	Surname string
	// Username opcional: si coincide con una cuenta existente, se vincula.
	Username string
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	c, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if errors.Is(err, storage.ErrNotFound) {
		logger.FromContext(ctx, s.log).Error("client not found", map[string]any{"client_id": id})
		return Client{}, errWrongID
	}
	if err != nil {
		return Client{}, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Client, error) {
	name := strings.TrimSpace(in.Name)
	surname := strings.TrimSpace(in.Surname)
	if name == "" || surname == "" {
		logger.FromContext(ctx, s.log).Error("client creation failed: name or surname is empty", nil)
		return Client{}, errMissingFields
	}

	c := Client{
		ID:        uuid.NewString(),
		Name:      name,
		Surname:   surname,
		CreatedAt: s.now(),
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		userID, err := s.resolveUser(ctx, in.Username)
		if err != nil {
			return err
		}
		c.UserID = userID

		if err := s.repo.Create(ctx, c); err != nil {
			return fmt.Errorf("create client: %w", err)
		}
		return nil
	})
	if err != nil {
		return Client{}, err
	}

	logger.FromContext(ctx, s.log).Info("client created", map[string]any{
		"client_id": c.ID,
		"linked":    c.IsLinked(),
	})
	return c, nil
}

// resolveUser es best-effort: un username desconocido deja al client sin vincular.
func (s *Service) resolveUser(ctx context.Context, username string) (*string, error) {
	username = strings.TrimSpace(username)
	if username == "" || s.users == nil {
		return nil, nil
	}

	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve client user: %w", err)
	}
	id := u.ID
	return &id, nil
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
			return fmt.Errorf("delete client: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx, s.log).Info("client deleted", map[string]any{"client_id": id})
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]Client, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return items, nil
}
