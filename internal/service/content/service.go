package content

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/service/content/models"
)

// Service объявления, FAQ и точки на карте
type Service struct {
	client   BackendClient
	location *time.Location
	now      func() time.Time
	logger   Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(client BackendClient, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		client:   client,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Board возвращает объявления и FAQ с отрендеренным markdown
func (s *Service) Board(ctx context.Context) (*models.Board, error) {
	board, err := s.client.GetNoticeBoard(ctx)
	if err != nil {
		s.logger.Error("Board: failed to fetch notice board: %v", err)
		return nil, fmt.Errorf("%w: Board: %v", ErrUnavailable, err)
	}

	notices := make([]models.NoticeView, 0, len(board.Notices))
	for _, n := range board.Notices {
		html, err := renderMarkdown(n.Content)
		if err != nil {
			s.logger.Warn("Board: notice id=%d: %v", n.ID, err)
			return nil, err
		}
		notices = append(notices, models.NoticeView{Notice: n, ContentHTML: html})
	}
	// YYYY-MM-DD сравнивается как строка
	sort.SliceStable(notices, func(i, j int) bool {
		if notices[i].Date != notices[j].Date {
			return notices[i].Date > notices[j].Date
		}
		return notices[i].ID > notices[j].ID
	})

	faqs := make([]models.FaqView, 0, len(board.Faqs))
	for _, f := range board.Faqs {
		html, err := renderMarkdown(f.Answer)
		if err != nil {
			s.logger.Warn("Board: faq id=%d: %v", f.ID, err)
			return nil, err
		}
		faqs = append(faqs, models.FaqView{Faq: f, AnswerHTML: html})
	}
	sort.SliceStable(faqs, func(i, j int) bool { return faqs[i].ID < faqs[j].ID })

	return &models.Board{Notices: notices, Faqs: faqs}, nil
}

// CreateNotice создает объявление; без даты ставится сегодняшняя
func (s *Service) CreateNotice(ctx context.Context, n domain.Notice) error {
	n.Title = strings.TrimSpace(n.Title)
	n.Type = domain.NoticeType(strings.ToLower(string(n.Type)))
	if n.Date == "" {
		n.Date = s.now().In(s.location).Format(domain.DateFormat)
	}

	if err := validateNotice(n); err != nil {
		return err
	}

	if err := s.client.CreateNotice(ctx, n); err != nil {
		s.logger.Error("CreateNotice: failed to create notice %q: %v", n.Title, err)
		return fmt.Errorf("%w: CreateNotice: %v", ErrUnavailable, err)
	}

	s.logger.Info("CreateNotice: created notice %q, type=%s", n.Title, n.Type)
	return nil
}

// CreateFaq создает вопрос-ответ
func (s *Service) CreateFaq(ctx context.Context, f domain.Faq) error {
	f.Question = strings.TrimSpace(f.Question)

	if err := validateFaq(f); err != nil {
		return err
	}

	if err := s.client.CreateFaq(ctx, f); err != nil {
		s.logger.Error("CreateFaq: failed to create faq: %v", err)
		return fmt.Errorf("%w: CreateFaq: %v", ErrUnavailable, err)
	}

	s.logger.Info("CreateFaq: created faq %q", f.Question)
	return nil
}

// Locations точки на карте
func (s *Service) Locations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.client.GetLocations(ctx)
	if err != nil {
		s.logger.Error("Locations: failed to fetch locations: %v", err)
		return nil, fmt.Errorf("%w: Locations: %v", ErrUnavailable, err)
	}
	return locations, nil
}
