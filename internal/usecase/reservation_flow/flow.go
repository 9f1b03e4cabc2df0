package reservation_flow

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
)

// Deps зависимости сценария
type Deps struct {
	Slots   SlotLoader
	Client  BackendClient
	Metrics Metrics
	Logger  Logger
}

// Flow сценарий бронирования одной темы.
// Сетевые вызовы выполняются без блокировки; состояние меняется только под mu.
type Flow struct {
	mu sync.Mutex

	theme domain.Theme
	state State

	date          string
	slots         []domain.TimeSlot
	slotsDegraded bool
	slot          *domain.TimeSlot
	details       Details

	// generation растет при каждом выборе даты, ответы старых загрузок отбрасываются
	generation uint64

	reservation *domain.CreatedReservation
	lastErr     error

	deps Deps
}

// NewFlow начинает бронирование темы в состоянии выбора даты
func NewFlow(theme domain.Theme, deps Deps) (*Flow, error) {
	min, _, ok := theme.HeadCountRange()
	if !theme.IsActive || !ok {
		return nil, fmt.Errorf("%w: theme_id=%d", ErrThemeInactive, theme.ID)
	}
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}

	deps.Logger.Info("ReservationFlow: started for theme=%d", theme.ID)

	return &Flow{
		theme: theme,
		state: StateChoosingDate,
		details: Details{
			HeadCount:   min,
			PaymentType: domain.DefaultPaymentType,
		},
		deps: deps,
	}, nil
}

// SelectDate выбирает дату и загружает слоты.
// Если пока шла загрузка была выбрана другая дата, результат отбрасывается с ErrStaleResponse.
func (f *Flow) SelectDate(ctx context.Context, date string) (Snapshot, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return Snapshot{}, ErrSubmitInProgress
	case StateSucceeded:
		f.mu.Unlock()
		return Snapshot{}, fmt.Errorf("%w: SelectDate from %s", ErrInvalidTransition, f.state)
	}

	f.transition(StateChoosingDate)
	f.date = date
	f.slots = nil
	f.slotsDegraded = false
	f.slot = nil
	f.lastErr = nil
	f.generation++
	gen := f.generation
	themeID := f.theme.ID
	f.mu.Unlock()

	resp, err := f.deps.Slots.Execute(ctx, &get_available_slots.Request{ThemeID: themeID, Date: date})

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation || date != f.date {
		f.deps.Logger.Info("ReservationFlow: discarded stale slots for theme=%d, date=%s", themeID, date)
		return f.snapshot(), ErrStaleResponse
	}

	if err != nil {
		f.deps.Logger.Warn("ReservationFlow: failed to load slots for theme=%d, date=%s: %v", themeID, date, err)
		return f.snapshot(), err
	}

	f.slots = resp.Slots
	f.slotsDegraded = resp.Degraded
	f.transition(StateChoosingTime)

	return f.snapshot(), nil
}

// SelectSlot выбирает время. Занятый или неизвестный слот состояние не меняет.
func (f *Flow) SelectSlot(slotID int64) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateChoosingTime && !f.state.acceptsDetails() {
		return f.snapshot(), fmt.Errorf("%w: SelectSlot from %s", ErrInvalidTransition, f.state)
	}

	slot, ok := domain.FindSlot(f.slots, slotID)
	if !ok {
		return f.snapshot(), fmt.Errorf("%w: slot_id=%d", ErrSlotNotFound, slotID)
	}
	if !slot.IsOpen() {
		return f.snapshot(), fmt.Errorf("%w: slot_id=%d", ErrSlotReserved, slotID)
	}

	f.slot = &slot
	f.lastErr = nil
	f.transition(StateEnteringDetails)

	return f.snapshot(), nil
}

// UpdateDetails сохраняет данные формы без проверки
func (f *Flow) UpdateDetails(d Details) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return f.snapshot(), ErrSubmitInProgress
	}
	if !f.state.acceptsDetails() {
		return f.snapshot(), fmt.Errorf("%w: UpdateDetails from %s", ErrInvalidTransition, f.state)
	}

	f.setDetails(d)
	return f.snapshot(), nil
}

// PatchDetails меняет только переданные поля формы, остальное сохраняется
func (f *Flow) PatchDetails(p DetailsPatch) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return f.snapshot(), ErrSubmitInProgress
	}
	if !f.state.acceptsDetails() {
		return f.snapshot(), fmt.Errorf("%w: PatchDetails from %s", ErrInvalidTransition, f.state)
	}

	f.setDetails(p.apply(f.details))
	return f.snapshot(), nil
}

func (f *Flow) setDetails(d Details) {
	if d.PaymentType == "" {
		d.PaymentType = domain.DefaultPaymentType
	}
	f.details = d
}

// Submit проверяет форму и отправляет заявку.
// Ошибка проверки не меняет состояние и не доходит до бэкенда.
func (f *Flow) Submit(ctx context.Context) (*domain.CreatedReservation, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	if !f.state.acceptsDetails() {
		state := f.state
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: Submit from %s", ErrInvalidTransition, state)
	}

	if err := validateDetails(&f.theme, f.details); err != nil {
		f.deps.Logger.Info("ReservationFlow: validation failed for theme=%d: %v", f.theme.ID, err)
		f.mu.Unlock()
		return nil, err
	}

	req := domain.NewReservation{
		ThemeID:       f.theme.ID,
		TimeSlotID:    f.slot.ID,
		Date:          f.date,
		CustomerName:  f.details.Name,
		CustomerPhone: f.details.Phone,
		HeadCount:     f.details.HeadCount,
		PaymentType:   f.details.PaymentType,
		CaptchaToken:  f.details.CaptchaToken,
	}
	f.lastErr = nil
	f.transition(StateSubmitting)
	f.mu.Unlock()

	f.deps.Logger.Info("ReservationFlow: submitting theme=%d, date=%s, slot=%d", req.ThemeID, req.Date, req.TimeSlotID)
	created, err := f.deps.Client.CreateReservation(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		flowErr := categorize(err)
		f.deps.Logger.Warn("ReservationFlow: submit failed for theme=%d, date=%s, slot=%d: %v", req.ThemeID, req.Date, req.TimeSlotID, err)
		f.lastErr = flowErr
		f.transition(StateFailed)
		return nil, flowErr
	}

	f.deps.Logger.Info("ReservationFlow: reservation created id=%d for theme=%d", created.ID, req.ThemeID)

	// Черновик уничтожается после успеха
	f.reservation = created
	f.slots = nil
	f.slot = nil
	f.details = Details{}
	f.transition(StateSucceeded)

	return created, nil
}

// TotalPrice сумма к оплате для отображения
func (f *Flow) TotalPrice() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.theme.TotalPrice(f.details.HeadCount)
}

// State текущее состояние
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Snapshot копия состояния для отображения
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

func (f *Flow) snapshot() Snapshot {
	min, max, _ := f.theme.HeadCountRange()

	s := Snapshot{
		State:         f.state,
		Theme:         f.theme,
		Date:          f.date,
		SlotsDegraded: f.slotsDegraded,
		Details:       f.details,
		MinHeadCount:  min,
		MaxHeadCount:  max,
		TotalPrice:    f.theme.TotalPrice(f.details.HeadCount),
		LastError:     f.lastErr,
	}

	if f.slots != nil {
		s.Slots = make([]domain.TimeSlot, len(f.slots))
		copy(s.Slots, f.slots)
	}
	if f.slot != nil {
		slot := *f.slot
		s.SelectedSlot = &slot
	}
	if f.reservation != nil {
		r := *f.reservation
		s.Reservation = &r
	}

	return s
}

func (f *Flow) transition(to State) {
	if f.state == to {
		return
	}
	f.deps.Metrics.FlowTransition(FlowName, string(f.state), string(to))
	f.state = to
}
