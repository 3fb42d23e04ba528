package popup

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"scraply/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	popups   PopupRepository
	cache    Cache
	cacheTTL time.Duration
}

func NewService(popups PopupRepository, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{
		popups:   popups,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func activeCacheKey(page string) string {
	return "popup:active:" + page
}

// cachedPages are the keys invalidated whenever a popup changes. Unknown
// page values always miss the cache and fall through to the store.
func cachedPageKeys() []string {
	keys := make([]string, 0, len(domain.PopupPages))
	for _, p := range domain.PopupPages {
		keys = append(keys, activeCacheKey(p))
	}
	return keys
}

// SelectActive returns the single highest-ranked active popup for a page:
// active popups targeting "all" or the page itself, ordered by priority
// descending then creation time descending, first match only. A nil
// result means nothing should be shown.
func (s *Service) SelectActive(ctx context.Context, page string) (*domain.Popup, error) {
	if page == "" {
		page = "all"
	}

	if domain.ValidPopupPage(page) && s.cache != nil {
		if raw, _ := s.cache.Get(ctx, activeCacheKey(page)); len(raw) > 0 {
			var cached domain.Popup
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	candidates, err := s.popups.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		if targetsPage(&candidates[i], page) {
			selected := candidates[i]
			if domain.ValidPopupPage(page) && s.cache != nil {
				if raw, err := json.Marshal(selected); err == nil {
					_ = s.cache.Set(ctx, activeCacheKey(page), raw, s.cacheTTL)
				}
			}
			return &selected, nil
		}
	}
	return nil, nil
}

func targetsPage(p *domain.Popup, page string) bool {
	for _, t := range p.TargetPages {
		if t == "all" || t == page {
			return true
		}
	}
	return false
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Popup, error) {
	p, err := s.popups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Popup, error) {
	return s.popups.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreatePopupRequest) (*domain.Popup, error) {
	pages, err := normalizePages(req.TargetPages)
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	p := &domain.Popup{
		Title:         req.Title,
		Content:       req.Content,
		DetailContent: req.DetailContent,
		IsActive:      active,
		Frequency:     clampFrequency(req.Frequency),
		Priority:      clampPriority(req.Priority),
		TargetPages:   pages,
	}

	if err := s.popups.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePopupRequest) (*domain.Popup, error) {
	p, err := s.popups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.DetailContent != nil {
		p.DetailContent = *req.DetailContent
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.Frequency != nil {
		p.Frequency = clampFrequency(*req.Frequency)
	}
	if req.Priority != nil {
		p.Priority = clampPriority(*req.Priority)
	}
	if req.TargetPages != nil {
		pages, err := normalizePages(req.TargetPages)
		if err != nil {
			return nil, err
		}
		p.TargetPages = pages
	}

	if err := s.popups.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.popups.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

// TrackView counts an actual display. The client fires this after its
// presentation delay, not on fetch, so fetch-and-suppress never inflates
// the counter.
func (s *Service) TrackView(ctx context.Context, id int64) error {
	if err := s.popups.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// TrackClick counts an explicit "learn more" follow.
func (s *Service) TrackClick(ctx context.Context, id int64) error {
	if err := s.popups.IncrementClicks(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, cachedPageKeys()...)
	}
}

func normalizePages(pages []string) ([]string, error) {
	if len(pages) == 0 {
		return []string{"all"}, nil
	}
	for _, p := range pages {
		if !domain.ValidPopupPage(p) {
			return nil, ErrValidation
		}
	}
	return pages, nil
}

func clampFrequency(v int) int {
	if v < domain.PopupMinFrequencyHours {
		return 24 // schema default
	}
	if v > domain.PopupMaxFrequencyHours {
		return domain.PopupMaxFrequencyHours
	}
	return v
}

func clampPriority(v int) int {
	if v < domain.PopupMinPriority {
		return domain.PopupMinPriority
	}
	if v > domain.PopupMaxPriority {
		return domain.PopupMaxPriority
	}
	return v
}
