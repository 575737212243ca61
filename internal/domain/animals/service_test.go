package animals

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic-records/internal/platform/apperr"
	"vet-clinic-records/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[string]Animal
	listErr error
	// raceSpecies simula que otro insert ganó entre el check y el Create.
	raceSpecies string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if a.Species == r.raceSpecies {
		return storage.ErrDuplicate
	}
	for _, existing := range r.byID {
		if existing.Species == a.Species {
			return storage.ErrDuplicate
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, storage.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) GetBySpecies(ctx context.Context, species string) (Animal, error) {
	for _, a := range r.byID {
		if a.Species == species {
			return a, nil
		}
	}
	return Animal{}, storage.ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DuplicateSpecies(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	first, err := svc.Create(context.Background(), CreateInput{Species: "dog"})
	require.NoError(t, err)
	assert.Equal(t, "dog", first.Species)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, now, first.CreatedAt)

	_, err = svc.Create(context.Background(), CreateInput{Species: "dog"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidData)
	assert.Equal(t, "species exists", err.Error())
}

func TestService_Create_SpeciesIsCaseSensitive(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateInput{Species: "dog"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateInput{Species: "Dog"})
	require.NoError(t, err)
}

func TestService_Create_StorageDuplicateIsInvalidData(t *testing.T) {
	repo := newTestRepo()
	repo.raceSpecies = "cat"
	svc := NewService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateInput{Species: "cat"})
	assert.ErrorIs(t, err, apperr.ErrInvalidData)
}

func TestService_Create_EmptySpecies(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateInput{Species: "  "})
	assert.ErrorIs(t, err, apperr.ErrInvalidData)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Delete_Twice(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)
	a, err := svc.Create(context.Background(), CreateInput{Species: "parrot"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), a.ID))

	err = svc.Delete(context.Background(), a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_ListAll(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)
	for _, s := range []string{"dog", "cat", "rabbit"} {
		_, err := svc.Create(context.Background(), CreateInput{Species: s})
		require.NoError(t, err)
	}

	items, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)

	repo.listErr = errors.New("db down")
	_, err = svc.ListAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.listErr)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}
