package profile

import "context"

// Repository describes profile persistence needs from use cases. Insert is
// idempotent per user: inserting when a row already exists for the same
// user must return the existing row, never create a second one.
type Repository[T Record[T]] interface {
	GetByUserID(ctx context.Context, userID string) (T, bool, error)
	Insert(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) error
	List(ctx context.Context, limit int) ([]T, error)
}
