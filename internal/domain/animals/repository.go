package animals

import "context"

// Repository: GetByID y GetBySpecies devuelven storage.ErrNotFound si no hay registro;
// Create devuelve storage.ErrDuplicate si la especie ya existe.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Animal, error)
	GetBySpecies(ctx context.Context, species string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
}
