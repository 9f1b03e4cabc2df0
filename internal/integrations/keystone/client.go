package keystone

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/keystone-front/internal/domain"
)

const apiPrefix = "/api"

// Client клиент REST API бэкенда эскейп-румов
type Client struct {
	baseURL    string
	credential Credential
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда
func NewClient(baseURL string, timeout time.Duration, credential Credential, metrics Metrics, log Logger) *Client {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		credential: credential,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// ListThemes получает все темы
func (c *Client) ListThemes(ctx context.Context) ([]domain.Theme, error) {
	var dtos []ThemeDTO
	if err := c.do(ctx, "list_themes", http.MethodGet, "/themes", nil, nil, &dtos); err != nil {
		return nil, err
	}

	themes := make([]domain.Theme, len(dtos))
	for i, dto := range dtos {
		themes[i] = dto.toDomain()
	}
	return themes, nil
}

// GetTheme получает тему по ID
func (c *Client) GetTheme(ctx context.Context, themeID int64) (*domain.Theme, error) {
	var dto ThemeDTO
	path := fmt.Sprintf("/themes/%d", themeID)
	if err := c.do(ctx, "get_theme", http.MethodGet, path, nil, nil, &dto); err != nil {
		return nil, err
	}

	theme := dto.toDomain()
	return &theme, nil
}

// GetAvailableTimes получает слоты темы на дату (YYYY-MM-DD)
func (c *Client) GetAvailableTimes(ctx context.Context, themeID int64, date string) ([]domain.TimeSlot, error) {
	var dtos []TimeSlotDTO
	path := fmt.Sprintf("/themes/%d/available-times", themeID)
	query := url.Values{"date": {date}}
	if err := c.do(ctx, "available_times", http.MethodGet, path, query, nil, &dtos); err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, len(dtos))
	for i, dto := range dtos {
		slots[i] = dto.toDomain()
	}
	return slots, nil
}

// GetAvailableTimesWithGracefulDegradation получает слоты с graceful degradation.
// Бизнес-ошибки (404, 400) пробрасываются как есть, недоступность бэкенда
// превращается в ErrServiceDegraded.
func (c *Client) GetAvailableTimesWithGracefulDegradation(ctx context.Context, themeID int64, date string) ([]domain.TimeSlot, error) {
	slots, err := c.GetAvailableTimes(ctx, themeID, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrRejected) || errors.Is(err, ErrUnauthorized) {
			c.log.Warn("GetAvailableTimes: backend refused lookup for theme_id=%d, date=%s: %v", themeID, date, err)
			return nil, err
		}

		c.log.Error("Backend unavailable, applying graceful degradation for theme_id=%d, date=%s: %v", themeID, date, err)
		return nil, fmt.Errorf("%w: theme_id=%d, date=%s, error=%v", ErrServiceDegraded, themeID, date, err)
	}

	return slots, nil
}

// CreateReservation отправляет полную заявку на бронь.
// Бэкенд может вернуть пустое тело, число или объект с reservationId.
func (c *Client) CreateReservation(ctx context.Context, r domain.NewReservation) (*domain.CreatedReservation, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "create_reservation", http.MethodPost, "/reservations", nil, fromNewReservation(r), &raw); err != nil {
		return nil, err
	}

	created := &domain.CreatedReservation{}
	body := bytes.TrimSpace(raw)
	if len(body) == 0 || string(body) == "null" {
		return created, nil
	}

	if body[0] == '{' {
		var dto createdReservationDTO
		if err := json.Unmarshal(body, &dto); err != nil {
			return nil, fmt.Errorf("%w: failed to decode created reservation: %v", ErrInvalidResponse, err)
		}
		created.ID = dto.ReservationID
		return created, nil
	}

	id, err := strconv.ParseInt(strings.Trim(string(body), `"`), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: unexpected create reservation body: %s", ErrInvalidResponse, string(body))
	}
	created.ID = id
	return created, nil
}

// ConfirmReservation ищет бронь по тройке (номер, имя, телефон)
func (c *Client) ConfirmReservation(ctx context.Context, reservationID, name, phone string) (*domain.Reservation, error) {
	var dto ReservationDTO
	query := url.Values{
		"reservationId": {reservationID},
		"name":          {name},
		"phone":         {phone},
	}
	if err := c.do(ctx, "confirm_reservation", http.MethodGet, "/reservations/confirm", query, nil, &dto); err != nil {
		return nil, err
	}

	res := dto.toDomain()
	return &res, nil
}

// CancelReservation отменяет бронь и возвращает ID записи об отмене
func (c *Client) CancelReservation(ctx context.Context, reservationID int64) (int64, error) {
	var cancelID int64
	path := fmt.Sprintf("/reservations/%d/cancel", reservationID)
	if err := c.do(ctx, "cancel_reservation", http.MethodPost, path, nil, nil, &cancelID); err != nil {
		return 0, err
	}
	return cancelID, nil
}

// SaveRefundAccount сохраняет реквизиты возврата для отмены
func (c *Client) SaveRefundAccount(ctx context.Context, cancelID int64, account domain.RefundAccount) error {
	path := fmt.Sprintf("/reservations/cancel/%d/refund", cancelID)
	body := RefundAccountRequest{RefundBank: account.Bank, RefundAccount: account.Account}
	return c.do(ctx, "save_refund_account", http.MethodPut, path, nil, body, nil)
}

// ListAdminReservations страница активных броней для админки
func (c *Client) ListAdminReservations(ctx context.Context, page, size int, keyword string) (*domain.AdminReservationPage, error) {
	var dto PageDTO
	query := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
	if keyword != "" {
		query.Set("keyword", keyword)
	}
	if err := c.do(ctx, "list_admin_reservations", http.MethodGet, "/admin/reservations", query, nil, &dto); err != nil {
		return nil, err
	}

	p := dto.toDomain()
	return &p, nil
}

// ListCancelledReservations все отмененные брони (без пагинации на стороне бэкенда)
func (c *Client) ListCancelledReservations(ctx context.Context, keyword string) ([]domain.Reservation, error) {
	var dtos []ReservationDTO
	var query url.Values
	if keyword != "" {
		query = url.Values{"keyword": {keyword}}
	}
	if err := c.do(ctx, "list_cancelled_reservations", http.MethodGet, "/admin/reservations/cancelled", query, nil, &dtos); err != nil {
		return nil, err
	}

	items := make([]domain.Reservation, len(dtos))
	for i, dto := range dtos {
		items[i] = dto.toDomain()
		// В этом списке бэкенд не присылает статус брони
		items[i].Status = domain.StatusCancelled
	}
	return items, nil
}

// UpdateAdminReservation полная замена редактируемых админом полей
func (c *Client) UpdateAdminReservation(ctx context.Context, reservationID int64, update domain.AdminReservationUpdate) error {
	path := fmt.Sprintf("/admin/reservations/%d", reservationID)
	return c.do(ctx, "update_admin_reservation", http.MethodPut, path, nil, fromAdminUpdate(update), nil)
}

// GetNoticeBoard объявления и FAQ
func (c *Client) GetNoticeBoard(ctx context.Context) (*domain.NoticeBoard, error) {
	var dto NoticeBoardDTO
	if err := c.do(ctx, "get_notice_board", http.MethodGet, "/notice", nil, nil, &dto); err != nil {
		return nil, err
	}

	board := &domain.NoticeBoard{
		Notices: make([]domain.Notice, len(dto.Notices)),
		Faqs:    make([]domain.Faq, len(dto.Faqs)),
	}
	for i, n := range dto.Notices {
		board.Notices[i] = n.toDomain()
	}
	for i, f := range dto.Faqs {
		board.Faqs[i] = f.toDomain()
	}
	return board, nil
}

// CreateNotice создает объявление
func (c *Client) CreateNotice(ctx context.Context, n domain.Notice) error {
	body := NoticeDTO{
		Title:      n.Title,
		Content:    n.Content,
		NoticeType: string(n.Type),
		NoticeDate: n.Date,
	}
	return c.do(ctx, "create_notice", http.MethodPost, "/notice", nil, body, nil)
}

// CreateFaq создает вопрос-ответ
func (c *Client) CreateFaq(ctx context.Context, f domain.Faq) error {
	body := FaqDTO{Question: f.Question, Answer: f.Answer}
	return c.do(ctx, "create_faq", http.MethodPost, "/faq", nil, body, nil)
}

// GetLocations точки на карте, упорядоченные по ID
func (c *Client) GetLocations(ctx context.Context) ([]domain.Location, error) {
	var dtos []LocationDTO
	if err := c.do(ctx, "get_locations", http.MethodGet, "/map", nil, nil, &dtos); err != nil {
		return nil, err
	}

	locations := make([]domain.Location, len(dtos))
	for i, dto := range dtos {
		locations[i] = domain.Location{
			ID:        dto.MapID,
			Name:      dto.MapName,
			Address:   dto.Address,
			Latitude:  dto.Latitude,
			Longitude: dto.Longitude,
		}
	}
	sort.SliceStable(locations, func(i, j int) bool { return locations[i].ID < locations[j].ID })
	return locations, nil
}

// do выполняет запрос, учитывает метрики и переводит статус-коды в ошибки клиента.
// out == nil означает, что тело ответа не нужно.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveBackend(op, outcome(err), time.Since(start))
	}()

	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.credential.Header != "" && c.credential.Value != "" {
		req.Header.Set(c.credential.Header, c.credential.Value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrRejected, readErrorMessage(resp))
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, readErrorMessage(resp))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, readErrorMessage(resp))
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, readErrorMessage(resp))
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, readErrorMessage(resp))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readErrorMessage(resp))
	}

	if out == nil {
		return nil
	}

	if raw, ok := out.(*json.RawMessage); ok {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
		}
		*raw = data
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readErrorMessage достает message из тела ошибки, иначе возвращает тело как есть
func readErrorMessage(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return strings.TrimSpace(string(body))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrRejected):
		return "rejected"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
