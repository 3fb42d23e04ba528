package repository

import (
	"context"
	"time"

	"scraply/internal/domain"

	"gorm.io/gorm"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

type blogPostModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title"`
	Content   string    `gorm:"column:content"`
	Author    string    `gorm:"column:author"`
	Photo     *string   `gorm:"column:photo"`
	Featured  bool      `gorm:"column:featured;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (blogPostModel) TableName() string { return "blog_posts" }

type blogCommentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	PostID    int64     `gorm:"column:post_id;index"`
	Username  string    `gorm:"column:username"`
	Text      string    `gorm:"column:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (blogCommentModel) TableName() string { return "blog_comments" }

func toDomainBlogPost(m blogPostModel, comments []blogCommentModel) *domain.BlogPost {
	var photo string
	if m.Photo != nil {
		photo = *m.Photo
	}

	out := &domain.BlogPost{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Author:    m.Author,
		Photo:     photo,
		Featured:  m.Featured,
		Comments:  make([]domain.BlogComment, 0, len(comments)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, cm := range comments {
		out.Comments = append(out.Comments, domain.BlogComment{
			ID:        cm.ID,
			PostID:    cm.PostID,
			Username:  cm.Username,
			Text:      cm.Text,
			CreatedAt: cm.CreatedAt,
		})
	}
	return out
}

func (r *BlogRepository) Create(ctx context.Context, p *domain.BlogPost) error {
	var photo *string
	if p.Photo != "" {
		v := p.Photo
		photo = &v
	}
	m := blogPostModel{
		Title:    p.Title,
		Content:  p.Content,
		Author:   p.Author,
		Photo:    photo,
		Featured: p.Featured,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainBlogPost(m, nil)
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	var m blogPostModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}

	var comments []blogCommentModel
	tx = r.db.WithContext(ctx).
		Where("post_id = ?", id).
		Order("created_at ASC").
		Find(&comments)
	if tx.Error != nil {
		return nil, tx.Error
	}

	return toDomainBlogPost(m, comments), nil
}

// List returns all posts, featured first, newest first within each group.
// Comments are not loaded for list views.
func (r *BlogRepository) List(ctx context.Context) ([]domain.BlogPost, error) {
	var ms []blogPostModel
	tx := r.db.WithContext(ctx).
		Order("featured DESC").
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.BlogPost, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBlogPost(m, nil))
	}
	return out, nil
}

func (r *BlogRepository) AddComment(ctx context.Context, c *domain.BlogComment) error {
	var post blogPostModel
	if tx := r.db.WithContext(ctx).First(&post, c.PostID); tx.Error != nil {
		return tx.Error
	}

	m := blogCommentModel{
		PostID:   c.PostID,
		Username: c.Username,
		Text:     c.Text,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return nil
}
