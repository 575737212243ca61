package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-records/internal/platform/apperr"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/ports/auth"
	"vet-clinic-records/internal/ports/storage"
	"vet-clinic-records/internal/ports/tx"

	"github.com/google/uuid"
)

var (
	errWrongID        = apperr.NotFound("wrong id")
	errUnknownUser    = apperr.NotFound("unknown username")
	errUsernameExists = apperr.InvalidData("username exists")
	errMissingFields  = apperr.InvalidData("username and password are required")
)

type Service struct {
	repo    Repository
	encoder auth.PasswordEncoder
	tx      tx.Transactor
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, encoder auth.PasswordEncoder, transactor tx.Transactor, log logger.Logger) *Service {
	if transactor == nil {
		transactor = tx.None
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		encoder: encoder,
		tx:      transactor,
		log:     log.With(map[string]any{"service": "users"}),
		now:     time.Now,
	}
}

type CreateInput struct {
	Username string
	Password string
	Role     string
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	u, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if errors.Is(err, storage.ErrNotFound) {
		logger.FromContext(ctx, s.log).Error("user not found", map[string]any{"user_id": id})
		return User{}, errWrongID
	}
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByUsername es el lookup por clave única que usa clients para vincular cuentas.
func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, storage.ErrNotFound) {
		return User{}, errUnknownUser
	}
	if err != nil {
		return User{}, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return User{}, errMissingFields
	}
	role, err := auth.ParseRole(in.Role)
	if err != nil {
		return User{}, apperr.InvalidData(err.Error())
	}

	var created User
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.repo.GetByUsername(ctx, username)
		switch {
		case err == nil:
			return errUsernameExists
		case !errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("find user by username: %w", err)
		}

		hash, err := s.encoder.Encode(in.Password)
		if err != nil {
			return fmt.Errorf("encode password: %w", err)
		}

		u := User{
			ID:           uuid.NewString(),
			Username:     username,
			PasswordHash: hash,
			Role:         role,
			CreatedAt:    s.now(),
		}
		if err := s.repo.Create(ctx, u); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return errUsernameExists
			}
			return fmt.Errorf("create user: %w", err)
		}
		created = u
		return nil
	})
	if err != nil {
		return User{}, err
	}

	logger.FromContext(ctx, s.log).Info("user created", map[string]any{
		"user_id":  created.ID,
		"username": created.Username,
	})
	return created, nil
}

// Delete no toca los clients vinculados: el vínculo es una referencia débil.
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
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx, s.log).Info("user deleted", map[string]any{"user_id": id})
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]User, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return items, nil
}
