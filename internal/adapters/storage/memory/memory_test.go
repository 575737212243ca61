package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/animals"
	"vet-clinic-records/internal/domain/clients"
	"vet-clinic-records/internal/domain/pets"
	"vet-clinic-records/internal/domain/users"
	"vet-clinic-records/internal/ports/auth"
	"vet-clinic-records/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalRepo_UniqueSpecies(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepo()

	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a1", Species: "dog"}))
	assert.ErrorIs(t, repo.Create(ctx, animals.Animal{ID: "a2", Species: "dog"}), storage.ErrDuplicate)

	got, err := repo.GetBySpecies(ctx, "dog")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	// borrar libera la especie
	require.NoError(t, repo.Delete(ctx, "a1"))
	assert.ErrorIs(t, repo.Delete(ctx, "a1"), storage.ErrNotFound)
	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a3", Species: "dog"}))
}

func TestUserRepo_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	require.NoError(t, repo.Create(ctx, users.User{ID: "u1", Username: "alice", Role: auth.RoleClient}))
	assert.ErrorIs(t, repo.Create(ctx, users.User{ID: "u2", Username: "alice"}), storage.ErrDuplicate)

	_, err := repo.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClientRepo_DoesNotShareUserIDPointer(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo()

	uid := "u1"
	require.NoError(t, repo.Create(ctx, clients.Client{ID: "c1", Name: "A", Surname: "B", UserID: &uid}))
	uid = "changed"

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got.UserID)
	assert.Equal(t, "u1", *got.UserID)
}

func TestPetRepo_ListOrderedByCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "p2", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "p1", CreatedAt: base}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p2", items[1].ID)

	_, err = repo.GetByID(ctx, "p3")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTransactor_SerializesScopes(t *testing.T) {
	tr := NewTransactor()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tr.WithinTx(ctx, func(ctx context.Context) error {
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestTransactor_NestedScopeDoesNotDeadlock(t *testing.T) {
	tr := NewTransactor()

	err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
		return tr.WithinTx(ctx, func(ctx context.Context) error { return nil })
	})
	require.NoError(t, err)
}
