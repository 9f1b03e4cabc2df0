package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/keystone-front/internal/domain"
	themeCache "github.com/m04kA/keystone-front/internal/infra/cache/themes"
	"github.com/m04kA/keystone-front/internal/integrations/keystone"
)

// Service каталог тем: только чтение, кэш поверх бэкенда
type Service struct {
	client     BackendClient
	cache      ThemeCache
	uploadBase string
	logger     Logger
}

// NewService создает новый экземпляр каталога
func NewService(client BackendClient, cache ThemeCache, uploadBase string, logger Logger) *Service {
	return &Service{
		client:     client,
		cache:      cache,
		uploadBase: uploadBase,
		logger:     logger,
	}
}

// List возвращает активные темы, упорядоченные по ID
func (s *Service) List(ctx context.Context) ([]domain.Theme, error) {
	all, err := s.cache.GetAll(ctx)
	if err != nil {
		s.logCacheError("List", err)

		all, err = s.client.ListThemes(ctx)
		if err != nil {
			s.logger.Error("List: failed to fetch themes: %v", err)
			return nil, fmt.Errorf("%w: List: %v", ErrUnavailable, err)
		}

		if err := s.cache.SetAll(ctx, all); err != nil {
			s.logCacheError("List", err)
		}
	}

	themes := make([]domain.Theme, 0, len(all))
	for _, t := range all {
		if !t.IsActive {
			continue
		}
		themes = append(themes, s.present(t))
	}
	sort.SliceStable(themes, func(i, j int) bool { return themes[i].ID < themes[j].ID })

	return themes, nil
}

// Get возвращает тему по ID (в том числе неактивную)
func (s *Service) Get(ctx context.Context, themeID int64) (*domain.Theme, error) {
	theme, err := s.cache.Get(ctx, themeID)
	if err == nil {
		t := s.present(*theme)
		return &t, nil
	}
	s.logCacheError("Get", err)

	theme, err = s.client.GetTheme(ctx, themeID)
	if err != nil {
		if errors.Is(err, keystone.ErrNotFound) {
			s.logger.Warn("Get: theme id=%d not found", themeID)
			return nil, ErrThemeNotFound
		}
		s.logger.Error("Get: failed to fetch theme id=%d: %v", themeID, err)
		return nil, fmt.Errorf("%w: Get theme_id=%d: %v", ErrUnavailable, themeID, err)
	}

	if err := s.cache.Set(ctx, *theme); err != nil {
		s.logCacheError("Get", err)
	}

	t := s.present(*theme)
	return &t, nil
}

// Refresh сбрасывает кэш каталога
func (s *Service) Refresh(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx); err != nil && !errors.Is(err, themeCache.ErrCacheDisabled) {
		s.logger.Warn("Refresh: failed to invalidate theme cache: %v", err)
		return err
	}
	s.logger.Info("Refresh: theme cache invalidated")
	return nil
}

func (s *Service) present(t domain.Theme) domain.Theme {
	t.ImageURL = domain.ResolveImageURL(t.ImageURL, s.uploadBase)
	return t
}

func (s *Service) logCacheError(op string, err error) {
	if errors.Is(err, themeCache.ErrCacheMiss) || errors.Is(err, themeCache.ErrCacheDisabled) {
		return
	}
	s.logger.Warn("%s: theme cache unavailable, falling back to backend: %v", op, err)
}
