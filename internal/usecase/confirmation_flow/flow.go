package confirmation_flow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/keystone-front/internal/domain"
)

// Flow сценарий проверки брони, отмены и ввода реквизитов возврата.
// Сетевые вызовы выполняются без блокировки; одновременно идет не больше одного.
type Flow struct {
	mu sync.Mutex

	state       State
	reservation *domain.Reservation
	cancelID    int64

	inFlight   bool
	generation uint64

	client  BackendClient
	metrics Metrics
	logger  Logger
}

// NewFlow создает сценарий в состоянии поиска
func NewFlow(client BackendClient, metrics Metrics, logger Logger) *Flow {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Flow{
		state:   StateLookup,
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Lookup ищет бронь по номеру, имени и телефону
func (f *Flow) Lookup(ctx context.Context, reservationID, name, phone string) (Snapshot, error) {
	gen, err := f.begin("Lookup", StateLookup, StateFound)
	if err != nil {
		return f.Snapshot(), err
	}

	if err := validateLookup(reservationID, name, phone); err != nil {
		f.mu.Lock()
		defer f.mu.Unlock()
		if gen == f.generation {
			f.inFlight = false
			if errors.Is(err, ErrNotFound) {
				f.forgetReservation()
			}
		}
		f.logger.Info("ConfirmationFlow: lookup rejected before request: %v", err)
		return f.snapshot(), err
	}

	res, err := f.client.ConfirmReservation(ctx, reservationID, name, phone)

	f.mu.Lock()
	defer f.mu.Unlock()
	if stale := f.end(gen); stale != nil {
		return f.snapshot(), stale
	}

	if err != nil {
		f.logger.Warn("ConfirmationFlow: lookup failed for reservation=%s: %v", reservationID, err)
		lookupErr := categorizeLookup(err)
		// Чужая бронь не должна оставаться на экране после неудачного поиска
		if errors.Is(lookupErr, ErrNotFound) {
			f.forgetReservation()
		}
		return f.snapshot(), lookupErr
	}

	f.reservation = res
	f.transition(StateFound)
	f.logger.Info("ConfirmationFlow: found reservation=%d, status=%s", res.ID, res.Status)

	return f.snapshot(), nil
}

// RequestCancel показывает подтверждение отмены
func (f *Flow) RequestCancel() (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inFlight {
		return f.snapshot(), ErrRequestInProgress
	}
	if f.state != StateFound {
		return f.snapshot(), fmt.Errorf("%w: RequestCancel from %s", ErrInvalidTransition, f.state)
	}
	if f.reservation.IsCancelled() {
		return f.snapshot(), ErrAlreadyCancelled
	}

	f.transition(StateCancelConfirm)
	return f.snapshot(), nil
}

// AbortCancel закрывает подтверждение без отмены
func (f *Flow) AbortCancel() (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inFlight {
		return f.snapshot(), ErrRequestInProgress
	}
	if f.state != StateCancelConfirm {
		return f.snapshot(), fmt.Errorf("%w: AbortCancel from %s", ErrInvalidTransition, f.state)
	}

	f.transition(StateFound)
	return f.snapshot(), nil
}

// ConfirmCancel отменяет бронь. Без предварительного RequestCancel запрос не отправляется.
func (f *Flow) ConfirmCancel(ctx context.Context) (Snapshot, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return f.Snapshot(), ErrRequestInProgress
	}
	if f.state != StateCancelConfirm {
		f.mu.Unlock()
		return f.Snapshot(), ErrConfirmationRequired
	}
	f.inFlight = true
	gen := f.generation
	reservationID := f.reservation.ID
	f.mu.Unlock()

	cancelID, err := f.client.CancelReservation(ctx, reservationID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if stale := f.end(gen); stale != nil {
		return f.snapshot(), stale
	}

	if err != nil {
		f.logger.Warn("ConfirmationFlow: cancel failed for reservation=%d: %v", reservationID, err)
		return f.snapshot(), categorize(err)
	}

	f.logger.Info("ConfirmationFlow: reservation=%d cancelled, cancel_id=%d", reservationID, cancelID)
	f.cancelID = cancelID
	f.reservation = nil
	f.transition(StateRefundDetails)

	return f.snapshot(), nil
}

// SubmitRefund сохраняет реквизиты возврата. После успеха сценарий полностью сбрасывается,
// возвращаемый срез имеет состояние Done.
func (f *Flow) SubmitRefund(ctx context.Context, bank, account string) (Snapshot, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return f.Snapshot(), ErrRequestInProgress
	}
	if f.state != StateRefundDetails {
		err := fmt.Errorf("%w: SubmitRefund from %s", ErrInvalidTransition, f.state)
		f.mu.Unlock()
		return f.Snapshot(), err
	}
	if err := validateRefund(bank, account); err != nil {
		f.mu.Unlock()
		return f.Snapshot(), err
	}
	f.inFlight = true
	gen := f.generation
	cancelID := f.cancelID
	f.mu.Unlock()

	err := f.client.SaveRefundAccount(ctx, cancelID, domain.RefundAccount{Bank: bank, Account: account})

	f.mu.Lock()
	defer f.mu.Unlock()
	if stale := f.end(gen); stale != nil {
		return f.snapshot(), stale
	}

	if err != nil {
		f.logger.Warn("ConfirmationFlow: refund save failed for cancel_id=%d: %v", cancelID, err)
		return f.snapshot(), categorize(err)
	}

	f.logger.Info("ConfirmationFlow: refund account saved for cancel_id=%d", cancelID)
	f.transition(StateDone)
	done := f.snapshot()
	f.reset()

	return done, nil
}

// Reset возвращает сценарий к поиску из любого состояния.
// Результат запроса, который был в полете, будет отброшен.
func (f *Flow) Reset() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
	return f.snapshot()
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

// begin помечает запрос как выполняющийся, если состояние одно из allowed
func (f *Flow) begin(op string, allowed ...State) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inFlight {
		return 0, ErrRequestInProgress
	}

	for _, s := range allowed {
		if f.state == s {
			f.inFlight = true
			return f.generation, nil
		}
	}
	return 0, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, f.state)
}

// end снимает флаг запроса; вызывается под mu
func (f *Flow) end(gen uint64) error {
	if gen != f.generation {
		return ErrStaleResponse
	}
	f.inFlight = false
	return nil
}

// forgetReservation убирает найденную бронь с экрана; вызывается под mu
func (f *Flow) forgetReservation() {
	f.reservation = nil
	f.transition(StateLookup)
}

func (f *Flow) reset() {
	f.transition(StateLookup)
	f.reservation = nil
	f.cancelID = 0
	f.inFlight = false
	f.generation++
}

func (f *Flow) snapshot() Snapshot {
	s := Snapshot{State: f.state, CancelID: f.cancelID}
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
	f.metrics.FlowTransition(FlowName, string(f.state), string(to))
	f.state = to
}
