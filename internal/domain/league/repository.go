package league

import "context"

// Repository describes league discovery needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, id string) (League, bool, error)
}
