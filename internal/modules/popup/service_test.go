package popup

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"scraply/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPopupRepo struct {
	mock.Mock
}

func (m *mockPopupRepo) Create(ctx context.Context, p *domain.Popup) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPopupRepo) GetByID(ctx context.Context, id int64) (*domain.Popup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Popup), args.Error(1)
}

func (m *mockPopupRepo) ListActive(ctx context.Context) ([]domain.Popup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Popup), args.Error(1)
}

func (m *mockPopupRepo) List(ctx context.Context) ([]domain.Popup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Popup), args.Error(1)
}

func (m *mockPopupRepo) Update(ctx context.Context, p *domain.Popup) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPopupRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPopupRepo) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPopupRepo) IncrementClicks(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeCache is an in-memory stand-in for the redis client.
type fakeCache struct {
	values map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.values[key], nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

// activePopups is ordered the way the store returns them: priority
// descending, then newest first.
func activePopups() []domain.Popup {
	return []domain.Popup{
		{ID: 2, Title: "Home banner", Priority: 8, IsActive: true, TargetPages: []string{"home"}},
		{ID: 1, Title: "Everywhere banner", Priority: 5, IsActive: true, TargetPages: []string{"all"}},
	}
}

func TestService_SelectActive_PageSpecificWins(t *testing.T) {
	repo := new(mockPopupRepo)
	repo.On("ListActive", mock.Anything).Return(activePopups(), nil)

	service := NewService(repo, nil, time.Minute)

	p, err := service.SelectActive(context.Background(), "home")

	assert.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, int64(2), p.ID)
}

func TestService_SelectActive_FallsBackToAllTarget(t *testing.T) {
	repo := new(mockPopupRepo)
	repo.On("ListActive", mock.Anything).Return(activePopups(), nil)

	service := NewService(repo, nil, time.Minute)

	// The home popup does not target "recycle", so the lower-priority
	// all-pages popup is the match.
	p, err := service.SelectActive(context.Background(), "recycle")

	assert.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, int64(1), p.ID)
}

func TestService_SelectActive_EmptyPageMeansAll(t *testing.T) {
	repo := new(mockPopupRepo)
	repo.On("ListActive", mock.Anything).Return(activePopups(), nil)

	service := NewService(repo, nil, time.Minute)

	p, err := service.SelectActive(context.Background(), "")

	assert.NoError(t, err)
	assert.NotNil(t, p)
	// "all" matches every popup's target list only through an explicit
	// "all" tag; the home-only popup is skipped.
	assert.Equal(t, int64(1), p.ID)
}

func TestService_SelectActive_NoMatch(t *testing.T) {
	repo := new(mockPopupRepo)
	repo.On("ListActive", mock.Anything).Return([]domain.Popup{
		{ID: 2, Priority: 8, IsActive: true, TargetPages: []string{"home"}},
	}, nil)

	service := NewService(repo, nil, time.Minute)

	p, err := service.SelectActive(context.Background(), "education")

	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestService_SelectActive_CacheReadThrough(t *testing.T) {
	repo := new(mockPopupRepo)
	repo.On("ListActive", mock.Anything).Return(activePopups(), nil).Once()

	cache := newFakeCache()
	service := NewService(repo, cache, time.Minute)

	first, err := service.SelectActive(context.Background(), "home")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), first.ID)

	// Second lookup is served from the cache; the store is not asked again.
	second, err := service.SelectActive(context.Background(), "home")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	repo.AssertNumberOfCalls(t, "ListActive", 1)
}

func TestService_Create_InvalidatesCache(t *testing.T) {
	repo := new(mockPopupRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	cache := newFakeCache()
	stale, _ := json.Marshal(domain.Popup{ID: 99})
	cache.values["popup:active:home"] = stale

	service := NewService(repo, cache, time.Minute)

	_, err := service.Create(context.Background(), CreatePopupRequest{
		Title:       "Fresh",
		Content:     "Fresh content",
		TargetPages: []string{"home"},
	})

	assert.NoError(t, err)
	assert.Empty(t, cache.values["popup:active:home"])
}

func TestService_Create_DefaultsAndClamps(t *testing.T) {
	repo := new(mockPopupRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, nil, time.Minute)

	p, err := service.Create(context.Background(), CreatePopupRequest{
		Title:     "Clamped",
		Content:   "Clamped content",
		Frequency: 500,
		Priority:  99,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PopupMaxFrequencyHours, p.Frequency)
	assert.Equal(t, domain.PopupMaxPriority, p.Priority)
	assert.Equal(t, []string{"all"}, p.TargetPages)
	assert.True(t, p.IsActive)
}

func TestService_Create_ZeroFrequencyDefaultsTo24(t *testing.T) {
	repo := new(mockPopupRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, nil, time.Minute)

	p, err := service.Create(context.Background(), CreatePopupRequest{
		Title:   "Default frequency",
		Content: "Content",
	})

	assert.NoError(t, err)
	assert.Equal(t, 24, p.Frequency)
}

func TestService_Create_RejectsUnknownPage(t *testing.T) {
	repo := new(mockPopupRepo)
	service := NewService(repo, nil, time.Minute)

	_, err := service.Create(context.Background(), CreatePopupRequest{
		Title:       "Bad target",
		Content:     "Content",
		TargetPages: []string{"checkout"},
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
