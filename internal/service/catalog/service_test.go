package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/keystone-front/internal/domain"
	themeCache "github.com/m04kA/keystone-front/internal/infra/cache/themes"
	"github.com/m04kA/keystone-front/internal/integrations/keystone"
	"github.com/m04kA/keystone-front/pkg/logger"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) ListThemes(ctx context.Context) ([]domain.Theme, error) {
	args := m.Called(ctx)
	themes, _ := args.Get(0).([]domain.Theme)
	return themes, args.Error(1)
}

func (m *mockClient) GetTheme(ctx context.Context, themeID int64) (*domain.Theme, error) {
	args := m.Called(ctx, themeID)
	theme, _ := args.Get(0).(*domain.Theme)
	return theme, args.Error(1)
}

func backendThemes() []domain.Theme {
	return []domain.Theme{
		{ID: 3, Name: "C", IsActive: true, ImageURL: "c.jpg"},
		{ID: 1, Name: "A", IsActive: true, ImageURL: "https://cdn.example.com/a.jpg"},
		{ID: 2, Name: "B", IsActive: false},
	}
}

func TestService_List_FiltersAndOrders(t *testing.T) {
	client := &mockClient{}
	client.On("ListThemes", mock.Anything).Return(backendThemes(), nil).Once()

	svc := NewService(client, themeCache.NewCache(nil, 0), "https://img.example.com/upload", logger.NewNop())

	themes, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, int64(1), themes[0].ID)
	assert.Equal(t, int64(3), themes[1].ID)
	assert.Equal(t, "https://cdn.example.com/a.jpg", themes[0].ImageURL)
	assert.Equal(t, "https://img.example.com/upload/c.jpg", themes[1].ImageURL)
	client.AssertExpectations(t)
}

func TestService_List_CacheThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	client := &mockClient{}
	client.On("ListThemes", mock.Anything).Return(backendThemes(), nil).Once()

	svc := NewService(client, themeCache.NewCache(rdb, time.Minute), "", logger.NewNop())
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Вторая тема взята из кэша, заполненного List
	theme, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "C", theme.Name)

	client.AssertNumberOfCalls(t, "ListThemes", 1)
	client.AssertNotCalled(t, "GetTheme", mock.Anything, mock.Anything)

	require.NoError(t, svc.Refresh(ctx))
	client.On("ListThemes", mock.Anything).Return(backendThemes(), nil).Once()
	_, err = svc.List(ctx)
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "ListThemes", 2)
}

func TestService_List_BackendDown(t *testing.T) {
	client := &mockClient{}
	client.On("ListThemes", mock.Anything).Return(nil, fmt.Errorf("%w: boom", keystone.ErrUnavailable))

	svc := NewService(client, themeCache.NewCache(nil, 0), "", logger.NewNop())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestService_Get(t *testing.T) {
	tests := []struct {
		name      string
		backend   *domain.Theme
		backErr   error
		wantErr   error
		wantTheme string
	}{
		{name: "found", backend: &domain.Theme{ID: 5, Name: "E"}, wantTheme: "E"},
		{name: "not found", backErr: fmt.Errorf("%w: no theme", keystone.ErrNotFound), wantErr: ErrThemeNotFound},
		{name: "backend down", backErr: errors.New("dial tcp"), wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			client.On("GetTheme", mock.Anything, int64(5)).Return(tt.backend, tt.backErr)

			svc := NewService(client, themeCache.NewCache(nil, 0), "", logger.NewNop())

			theme, err := svc.Get(context.Background(), 5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTheme, theme.Name)
		})
	}
}
