package shared

import "context"

// Repository is the base interface for all repositories. Save assigns an
// id on create and Delete reports a missing id as a not found error.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}
