package clients

import "context"

type Repository interface {
	Create(ctx context.Context, c Client) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context) ([]Client, error)
}
