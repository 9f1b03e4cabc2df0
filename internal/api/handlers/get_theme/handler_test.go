package get_theme

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/service/catalog"
	"github.com/m04kA/keystone-front/pkg/logger"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) Get(ctx context.Context, themeID int64) (*domain.Theme, error) {
	args := m.Called(ctx, themeID)
	theme, _ := args.Get(0).(*domain.Theme)
	return theme, args.Error(1)
}

func serve(c *mockCatalog, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/themes/{themeId}", NewHandler(c, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := &mockCatalog{}
		c.On("Get", mock.Anything, int64(3)).
			Return(&domain.Theme{ID: 3, Name: "저주받은 저택", MinPerson: 2, PricePerPerson: 22000, IsActive: true}, nil)

		rec := serve(c, "/themes/3")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"저주받은 저택"`)
		assert.Contains(t, rec.Body.String(), `"maxPerson":7`)
	})

	t.Run("bad id", func(t *testing.T) {
		c := &mockCatalog{}
		rec := serve(c, "/themes/abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), msgInvalidThemeID)
		c.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		c := &mockCatalog{}
		c.On("Get", mock.Anything, int64(9)).Return(nil, fmt.Errorf("%w: theme_id=9", catalog.ErrThemeNotFound))

		rec := serve(c, "/themes/9")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), msgThemeNotFound)
	})

	t.Run("backend down", func(t *testing.T) {
		c := &mockCatalog{}
		c.On("Get", mock.Anything, int64(1)).Return(nil, fmt.Errorf("%w: dial tcp", catalog.ErrUnavailable))

		rec := serve(c, "/themes/1")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.NotContains(t, rec.Body.String(), "dial tcp")
	})
}
