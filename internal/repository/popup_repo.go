package repository

import (
	"context"
	"encoding/json"
	"time"

	"scraply/internal/domain"

	"gorm.io/gorm"
)

type PopupRepository struct {
	db *gorm.DB
}

func NewPopupRepository(db *gorm.DB) *PopupRepository {
	return &PopupRepository{db: db}
}

type popupModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Title         string    `gorm:"column:title"`
	Content       string    `gorm:"column:content"`
	DetailContent *string   `gorm:"column:detail_content"`
	IsActive      bool      `gorm:"column:is_active;index"`
	Frequency     int       `gorm:"column:frequency"`
	Priority      int       `gorm:"column:priority;index"`
	// TargetPages is a JSON-encoded string slice; page filtering happens
	// in the service so the column stays portable across backends.
	TargetPages string    `gorm:"column:target_pages"`
	ViewCount   int64     `gorm:"column:view_count"`
	ClickCount  int64     `gorm:"column:click_count"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (popupModel) TableName() string { return "popups" }

func toDomainPopup(m popupModel) *domain.Popup {
	var detail string
	if m.DetailContent != nil {
		detail = *m.DetailContent
	}

	var pages []string
	if m.TargetPages != "" {
		_ = json.Unmarshal([]byte(m.TargetPages), &pages)
	}
	if len(pages) == 0 {
		pages = []string{"all"}
	}

	return &domain.Popup{
		ID:            m.ID,
		Title:         m.Title,
		Content:       m.Content,
		DetailContent: detail,
		IsActive:      m.IsActive,
		Frequency:     m.Frequency,
		Priority:      m.Priority,
		TargetPages:   pages,
		ViewCount:     m.ViewCount,
		ClickCount:    m.ClickCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toPopupModel(p *domain.Popup) popupModel {
	var detail *string
	if p.DetailContent != "" {
		v := p.DetailContent
		detail = &v
	}

	pages := p.TargetPages
	if len(pages) == 0 {
		pages = []string{"all"}
	}
	encoded, _ := json.Marshal(pages)

	return popupModel{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		DetailContent: detail,
		IsActive:      p.IsActive,
		Frequency:     p.Frequency,
		Priority:      p.Priority,
		TargetPages:   string(encoded),
		ViewCount:     p.ViewCount,
		ClickCount:    p.ClickCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (r *PopupRepository) Create(ctx context.Context, p *domain.Popup) error {
	m := toPopupModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPopup(m)
	return nil
}

func (r *PopupRepository) GetByID(ctx context.Context, id int64) (*domain.Popup, error) {
	var m popupModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPopup(m), nil
}

// ListActive returns active popups ranked by priority descending, then
// creation time descending. The page filter is applied by the caller.
func (r *PopupRepository) ListActive(ctx context.Context) ([]domain.Popup, error) {
	var ms []popupModel
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority DESC").
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Popup, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainPopup(m))
	}
	return out, nil
}

func (r *PopupRepository) List(ctx context.Context) ([]domain.Popup, error) {
	var ms []popupModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Popup, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainPopup(m))
	}
	return out, nil
}

func (r *PopupRepository) Update(ctx context.Context, p *domain.Popup) error {
	m := toPopupModel(p)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPopup(m)
	return nil
}

func (r *PopupRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&popupModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PopupRepository) IncrementViews(ctx context.Context, id int64) error {
	return r.increment(ctx, id, "view_count")
}

func (r *PopupRepository) IncrementClicks(ctx context.Context, id int64) error {
	return r.increment(ctx, id, "click_count")
}

func (r *PopupRepository) increment(ctx context.Context, id int64, column string) error {
	tx := r.db.WithContext(ctx).Model(&popupModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
