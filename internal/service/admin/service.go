package admin

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/integrations/keystone"
	"github.com/m04kA/keystone-front/internal/service/admin/models"
)

// Service консоль администратора. Бэкенд остается источником истины,
// здесь только предварительные проверки и пагинация списка отмен.
type Service struct {
	client BackendClient
	logger Logger
}

// NewService создает новый экземпляр сервиса администратора
func NewService(client BackendClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// List возвращает страницу броней по фильтру
func (s *Service) List(ctx context.Context, filter models.ListFilter) (*domain.AdminReservationPage, error) {
	filter = filter.Normalize()
	s.logger.Info("AdminList: status=%s, keyword=%q, page=%d, size=%d", filter.Status, filter.Keyword, filter.Page, filter.Size)

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, filter.Status)
	}

	if filter.Status == domain.StatusCancelled {
		return s.listCancelled(ctx, filter)
	}

	page, err := s.client.ListAdminReservations(ctx, filter.Page, filter.Size, filter.Keyword)
	if err != nil {
		s.logger.Error("AdminList: failed to fetch reservations: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrUnavailable, err)
	}

	// Бэкенд не фильтрует по статусу; фильтр применяется к полученной странице
	if filter.Status != "" {
		items := make([]domain.Reservation, 0, len(page.Items))
		for _, r := range page.Items {
			if r.Status == filter.Status {
				items = append(items, r)
			}
		}
		page.Items = items
	}

	return page, nil
}

// Get возвращает бронь по ID. Отдельного эндпоинта у бэкенда нет:
// ищем по ключевому слову среди всех броней, затем среди отмененных.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	keyword := strconv.FormatInt(id, 10)

	page, err := s.client.ListAdminReservations(ctx, 0, domain.MaxAdminPageSize, keyword)
	if err != nil {
		s.logger.Error("AdminGet: failed to search reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get: %v", ErrUnavailable, err)
	}
	if r, ok := findByID(page.Items, id); ok {
		return &r, nil
	}

	cancelled, err := s.client.ListCancelledReservations(ctx, keyword)
	if err != nil {
		s.logger.Error("AdminGet: failed to search cancelled reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get: %v", ErrUnavailable, err)
	}
	if r, ok := findByID(cancelled, id); ok {
		return &r, nil
	}

	s.logger.Warn("AdminGet: reservation id=%d not found", id)
	return nil, ErrReservationNotFound
}

// Update полностью заменяет редактируемые поля брони
func (s *Service) Update(ctx context.Context, id int64, update domain.AdminReservationUpdate) (*domain.Reservation, error) {
	s.logger.Info("AdminUpdate: id=%d, status=%s, headCount=%d", id, update.Status, update.HeadCount)

	if err := validateUpdate(update); err != nil {
		s.logger.Warn("AdminUpdate: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.IsCancelled() && update.Status != domain.StatusCancelled {
		s.logger.Warn("AdminUpdate: id=%d is cancelled, refusing status %s", id, update.Status)
		return nil, fmt.Errorf("%w: id=%d", ErrInvalidTransition, id)
	}

	if update.Status == domain.StatusCancelled && update.RefundStatus == "" {
		update.RefundStatus = domain.RefundPending
	}

	if err := s.client.UpdateAdminReservation(ctx, id, update); err != nil {
		if errors.Is(err, keystone.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("AdminUpdate: failed to update id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update: %v", ErrUnavailable, err)
	}

	updated := *current
	updated.Status = update.Status
	updated.HeadCount = update.HeadCount
	updated.RefundBank = update.RefundBank
	updated.RefundAccount = update.RefundAccount
	updated.RefundStatus = update.RefundStatus

	s.logger.Info("AdminUpdate: id=%d updated", id)
	return &updated, nil
}

// listCancelled пагинирует список отмен на стороне BFF
func (s *Service) listCancelled(ctx context.Context, filter models.ListFilter) (*domain.AdminReservationPage, error) {
	all, err := s.client.ListCancelledReservations(ctx, filter.Keyword)
	if err != nil {
		s.logger.Error("AdminList: failed to fetch cancelled reservations: %v", err)
		return nil, fmt.Errorf("%w: List cancelled: %v", ErrUnavailable, err)
	}

	total := len(all)
	totalPages := (total + filter.Size - 1) / filter.Size

	start := total
	if filter.Page < totalPages {
		start = filter.Page * filter.Size
	}
	end := start + filter.Size
	if end > total {
		end = total
	}

	items := make([]domain.Reservation, end-start)
	copy(items, all[start:end])

	return &domain.AdminReservationPage{
		Items:         items,
		Page:          filter.Page,
		Size:          filter.Size,
		TotalElements: int64(total),
		TotalPages:    totalPages,
	}, nil
}

func findByID(items []domain.Reservation, id int64) (domain.Reservation, bool) {
	for _, r := range items {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Reservation{}, false
}
