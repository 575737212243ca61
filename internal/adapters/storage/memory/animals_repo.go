package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vet-clinic-records/internal/domain/animals"
	"vet-clinic-records/internal/ports/storage"
)

type animalRepo struct {
	mu        sync.RWMutex
	byID      map[string]animals.Animal
	bySpecies map[string]string // species -> id
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID:      make(map[string]animals.Animal),
		bySpecies: make(map[string]string),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return storage.ErrDuplicate
	}
	if _, exists := r.bySpecies[a.Species]; exists {
		return storage.ErrDuplicate
	}
	r.byID[a.ID] = a
	r.bySpecies[a.Species] = a.ID
	return nil
}

func (r *animalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return storage.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.bySpecies, a.Species)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, storage.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) GetBySpecies(ctx context.Context, species string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySpecies[species]
	if !ok {
		return animals.Animal{}, storage.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
