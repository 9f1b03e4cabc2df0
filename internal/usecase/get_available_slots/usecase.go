package get_available_slots

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/keystone-front/internal/domain"
)

const defaultMaxParallel = 8

// UseCase use case для получения слотов тем на дату
type UseCase struct {
	client       BackendClient
	maxParallel  int
	location     *time.Location
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client BackendClient,
	maxParallel int,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}
	if location == nil {
		location = time.UTC
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		client:       client,
		maxParallel:  maxParallel,
		location:     location,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов одной темы.
// Кэширования нет: каждый вызов идет в бэкенд.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: theme=%d, date=%s", req.ThemeID, req.Date)

	if req.ThemeID <= 0 {
		return nil, fmt.Errorf("%w: themeID must be positive", ErrInvalidInput)
	}

	if err := validateDate(req.Date, uc.timeProvider.Now(), uc.location); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	resp, err := uc.lookup(ctx, req.ThemeID, req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: theme id=%d not found", req.ThemeID)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: got %d slots for theme=%d, date=%s", len(resp.Slots), req.ThemeID, req.Date)
	return resp, nil
}

// ExecuteForCatalog параллельно запрашивает слоты для всех тем.
// Ошибка одной темы не влияет на остальные: тема получает пустой список.
func (uc *UseCase) ExecuteForCatalog(ctx context.Context, req *CatalogRequest) (*CatalogResponse, error) {
	uc.logger.Info("GetAvailableSlots: catalog fan-out for %d themes, date=%s", len(req.ThemeIDs), req.Date)

	if err := validateDate(req.Date, uc.timeProvider.Now(), uc.location); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	result := &CatalogResponse{
		Date:    req.Date,
		ByTheme: make(map[int64]*Response, len(req.ThemeIDs)),
	}

	var (
		mu   sync.Mutex
		g    errgroup.Group
		seen = make(map[int64]struct{}, len(req.ThemeIDs))
	)
	g.SetLimit(uc.maxParallel)

	for _, themeID := range req.ThemeIDs {
		if _, dup := seen[themeID]; dup {
			continue
		}
		seen[themeID] = struct{}{}

		themeID := themeID
		g.Go(func() error {
			resp, err := uc.lookup(ctx, themeID, req.Date)
			if err != nil {
				// Тема пропала из бэкенда после загрузки каталога
				resp = &Response{ThemeID: themeID, Date: req.Date, Slots: []domain.TimeSlot{}, Degraded: true}
			}

			mu.Lock()
			result.ByTheme[themeID] = resp
			mu.Unlock()
			return nil
		})
	}

	// Горутины ошибок не возвращают
	_ = g.Wait()

	return result, nil
}
