package blog

import (
	"context"

	"scraply/internal/domain"
)

type BlogRepository interface {
	Create(ctx context.Context, p *domain.BlogPost) error
	GetByID(ctx context.Context, id int64) (*domain.BlogPost, error)
	List(ctx context.Context) ([]domain.BlogPost, error)
	AddComment(ctx context.Context, c *domain.BlogComment) error
}
