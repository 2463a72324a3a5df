package cache

import (
	"context"
	"strconv"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
	basecache "github.com/scoutbook/scoutbook/internal/platform/cache"
)

// ProfileRepository caches reads in front of another profile repository.
// Writes pass through and invalidate the affected keys, so a commit is
// visible to the next load immediately.
type ProfileRepository[T profile.Record[T]] struct {
	next    profile.Repository[T]
	cache   *basecache.Store
	variant string
}

func NewProfileRepository[T profile.Record[T]](next profile.Repository[T], cache *basecache.Store, variant string) *ProfileRepository[T] {
	return &ProfileRepository[T]{next: next, cache: cache, variant: variant}
}

func (r *ProfileRepository[T]) GetByUserID(ctx context.Context, userID string) (T, bool, error) {
	key := r.variant + ":user:" + userID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		record, exists, err := r.next.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return cachedProfile[T]{value: record, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedProfile[T])
	if !cached.exists {
		var zero T
		return zero, false, nil
	}

	return cached.value.Clone(), true, nil
}

func (r *ProfileRepository[T]) Insert(ctx context.Context, record T) (T, error) {
	stored, err := r.next.Insert(ctx, record)
	if err != nil {
		var zero T
		return zero, err
	}
	r.invalidate(ctx, record.Owner())

	return stored, nil
}

func (r *ProfileRepository[T]) Update(ctx context.Context, record T) error {
	if err := r.next.Update(ctx, record); err != nil {
		return err
	}
	r.invalidate(ctx, record.Owner())

	return nil
}

func (r *ProfileRepository[T]) List(ctx context.Context, limit int) ([]T, error) {
	key := r.variant + ":list:" + strconv.Itoa(limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}

	return out, nil
}

func (r *ProfileRepository[T]) invalidate(ctx context.Context, userID string) {
	r.cache.Delete(ctx, r.variant+":user:"+userID)
	r.cache.DeletePrefix(ctx, r.variant+":list:")
}

type cachedProfile[T any] struct {
	value  T
	exists bool
}
