package blog

import (
	"context"
	"errors"

	"scraply/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	posts BlogRepository
}

func NewService(posts BlogRepository) *Service {
	return &Service{posts: posts}
}

func (s *Service) CreatePost(ctx context.Context, req CreatePostRequest) (*domain.BlogPost, error) {
	p := &domain.BlogPost{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Photo:    req.Photo,
		Featured: req.Featured,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return s.posts.List(ctx)
}

// AddComment appends a comment to a post. Comments carry no moderation
// state; they are visible as soon as they are stored.
func (s *Service) AddComment(ctx context.Context, postID int64, req AddCommentRequest) (*domain.BlogComment, error) {
	comment := &domain.BlogComment{
		PostID:   postID,
		Username: req.Username,
		Text:     req.Text,
	}
	if err := s.posts.AddComment(ctx, comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}
