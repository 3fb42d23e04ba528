package popup

import (
	"context"
	"time"

	"scraply/internal/domain"
)

type PopupRepository interface {
	Create(ctx context.Context, p *domain.Popup) error
	GetByID(ctx context.Context, id int64) (*domain.Popup, error)
	ListActive(ctx context.Context) ([]domain.Popup, error)
	List(ctx context.Context) ([]domain.Popup, error)
	Update(ctx context.Context, p *domain.Popup) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
	IncrementClicks(ctx context.Context, id int64) error
}

// Cache is the optional read-through cache for active-popup lookups. A nil
// implementation must behave like a permanent miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
