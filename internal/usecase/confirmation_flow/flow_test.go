package confirmation_flow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/integrations/keystone"
	"github.com/m04kA/keystone-front/internal/validation"
	"github.com/m04kA/keystone-front/pkg/logger"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) ConfirmReservation(ctx context.Context, reservationID, name, phone string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID, name, phone)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

func (m *mockClient) CancelReservation(ctx context.Context, reservationID int64) (int64, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClient) SaveRefundAccount(ctx context.Context, cancelID int64, account domain.RefundAccount) error {
	args := m.Called(ctx, cancelID, account)
	return args.Error(0)
}

func waitReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:            12,
		Date:          "2026-12-01",
		ThemeName:     "저주받은 저택",
		CustomerName:  "홍길동",
		CustomerPhone: "01012345678",
		HeadCount:     3,
		Status:        domain.StatusWait,
	}
}

func newTestFlow(client BackendClient) *Flow {
	return NewFlow(client, nil, logger.NewNop())
}

func foundFlow(t *testing.T, client *mockClient) *Flow {
	t.Helper()
	client.On("ConfirmReservation", mock.Anything, "12", "홍길동", "01012345678").Return(waitReservation(), nil).Once()
	f := newTestFlow(client)
	_, err := f.Lookup(context.Background(), "12", "홍길동", "01012345678")
	require.NoError(t, err)
	return f
}

func TestFlow_NotFoundLookup(t *testing.T) {
	client := &mockClient{}
	client.On("ConfirmReservation", mock.Anything, "12", "김철수", "01012345678").
		Return(nil, fmt.Errorf("%w: no match", keystone.ErrNotFound)).Once()

	f := newTestFlow(client)
	snap, err := f.Lookup(context.Background(), "12", "김철수", "01012345678")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, StateLookup, snap.State)
	assert.Nil(t, snap.Reservation)
	client.AssertExpectations(t)
}

func TestFlow_FailedLookupHidesPreviousReservation(t *testing.T) {
	t.Run("backend not found", func(t *testing.T) {
		client := &mockClient{}
		f := foundFlow(t, client)
		client.On("ConfirmReservation", mock.Anything, "12345", "김철수", "01099998888").
			Return(nil, fmt.Errorf("%w: no match", keystone.ErrNotFound)).Once()

		snap, err := f.Lookup(context.Background(), "12345", "김철수", "01099998888")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, StateLookup, snap.State)
		assert.Nil(t, snap.Reservation)
		assert.Nil(t, f.Snapshot().Reservation)

		_, err = f.RequestCancel()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		client.AssertExpectations(t)
	})

	t.Run("malformed triple", func(t *testing.T) {
		client := &mockClient{}
		f := foundFlow(t, client)

		snap, err := f.Lookup(context.Background(), "12a", "홍길동", "01012345678")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, StateLookup, snap.State)
		assert.Nil(t, snap.Reservation)
	})

	t.Run("backend unavailable keeps result", func(t *testing.T) {
		client := &mockClient{}
		f := foundFlow(t, client)
		client.On("ConfirmReservation", mock.Anything, "13", "김철수", "01099998888").
			Return(nil, fmt.Errorf("%w: timeout", keystone.ErrUnavailable)).Once()

		snap, err := f.Lookup(context.Background(), "13", "김철수", "01099998888")
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, StateFound, snap.State)
		require.NotNil(t, snap.Reservation)
		assert.Equal(t, int64(12), snap.Reservation.ID)
	})
}

func TestFlow_LookupValidation(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		person  string
		phone   string
		wantErr error
		wantMsg string
	}{
		{name: "missing id", id: "", person: "홍길동", phone: "010", wantErr: validation.ErrInvalidField, wantMsg: MsgLookupFieldsRequired},
		{name: "missing phone", id: "12", person: "홍길동", phone: "", wantErr: validation.ErrInvalidField, wantMsg: MsgLookupFieldsRequired},
		{name: "id with letters", id: "12a", person: "홍길동", phone: "010", wantErr: ErrNotFound},
		{name: "id too long", id: "12345678901", person: "홍길동", phone: "010", wantErr: ErrNotFound},
		{name: "latin name", id: "12", person: "Hong", phone: "010", wantErr: ErrNotFound},
		{name: "phone with dash", id: "12", person: "홍길동", phone: "010-1234", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			f := newTestFlow(client)

			_, err := f.Lookup(context.Background(), tt.id, tt.person, tt.phone)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				msg, _ := validation.UserMessage(err)
				assert.Equal(t, tt.wantMsg, msg)
			}
			client.AssertNotCalled(t, "ConfirmReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

			// После ошибки проверки можно искать снова
			client.On("ConfirmReservation", mock.Anything, "12", "홍길동", "01012345678").Return(waitReservation(), nil).Once()
			_, err = f.Lookup(context.Background(), "12", "홍길동", "01012345678")
			assert.NoError(t, err)
		})
	}
}

func TestFlow_CancelRefundReset(t *testing.T) {
	client := &mockClient{}
	f := foundFlow(t, client)
	ctx := context.Background()

	assert.Equal(t, StateFound, f.State())
	require.NotNil(t, f.Snapshot().Reservation)

	snap, err := f.RequestCancel()
	require.NoError(t, err)
	assert.Equal(t, StateCancelConfirm, snap.State)

	client.On("CancelReservation", mock.Anything, int64(12)).Return(int64(99), nil).Once()
	snap, err = f.ConfirmCancel(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateRefundDetails, snap.State)
	assert.Equal(t, int64(99), snap.CancelID)
	assert.Nil(t, snap.Reservation)

	client.On("SaveRefundAccount", mock.Anything, int64(99), domain.RefundAccount{Bank: "국민은행", Account: "12345678"}).Return(nil).Once()
	snap, err = f.SubmitRefund(ctx, "국민은행", "12345678")
	require.NoError(t, err)
	assert.Equal(t, StateDone, snap.State)

	// Полный сброс: готов к новому поиску
	after := f.Snapshot()
	assert.Equal(t, StateLookup, after.State)
	assert.Nil(t, after.Reservation)
	assert.Zero(t, after.CancelID)

	client.On("ConfirmReservation", mock.Anything, "13", "김철수", "01099998888").Return(&domain.Reservation{ID: 13}, nil).Once()
	_, err = f.Lookup(ctx, "13", "김철수", "01099998888")
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestFlow_CancelWithoutConfirmation(t *testing.T) {
	client := &mockClient{}
	f := foundFlow(t, client)

	snap, err := f.ConfirmCancel(context.Background())
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Equal(t, StateFound, snap.State)

	fresh := newTestFlow(client)
	_, err = fresh.ConfirmCancel(context.Background())
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	client.AssertNotCalled(t, "CancelReservation", mock.Anything, mock.Anything)
}

func TestFlow_AbortCancel(t *testing.T) {
	client := &mockClient{}
	f := foundFlow(t, client)

	_, err := f.AbortCancel()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.RequestCancel()
	require.NoError(t, err)
	snap, err := f.AbortCancel()
	require.NoError(t, err)
	assert.Equal(t, StateFound, snap.State)
	require.NotNil(t, snap.Reservation)
}

func TestFlow_AlreadyCancelled(t *testing.T) {
	client := &mockClient{}
	cancelled := waitReservation()
	cancelled.Status = domain.StatusCancelled
	client.On("ConfirmReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cancelled, nil)

	f := newTestFlow(client)
	_, err := f.Lookup(context.Background(), "12", "홍길동", "01012345678")
	require.NoError(t, err)

	_, err = f.RequestCancel()
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Equal(t, StateFound, f.State())
}

func TestFlow_NetworkFailureKeepsState(t *testing.T) {
	client := &mockClient{}
	f := foundFlow(t, client)
	ctx := context.Background()

	_, err := f.RequestCancel()
	require.NoError(t, err)

	client.On("CancelReservation", mock.Anything, int64(12)).Return(int64(0), fmt.Errorf("%w: timeout", keystone.ErrUnavailable)).Once()
	snap, err := f.ConfirmCancel(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, StateCancelConfirm, snap.State)
	require.NotNil(t, snap.Reservation)

	// Повтор проходит
	client.On("CancelReservation", mock.Anything, int64(12)).Return(int64(5), nil).Once()
	_, err = f.ConfirmCancel(ctx)
	require.NoError(t, err)

	client.On("SaveRefundAccount", mock.Anything, int64(5), mock.Anything).Return(fmt.Errorf("%w: 502", keystone.ErrUnavailable)).Once()
	snap, err = f.SubmitRefund(ctx, "국민은행", "12345678")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, StateRefundDetails, snap.State)
	assert.Equal(t, int64(5), snap.CancelID)
}

func TestFlow_RefundValidation(t *testing.T) {
	tests := []struct {
		name    string
		bank    string
		account string
		wantMsg string
	}{
		{"empty bank", "", "123", MsgRefundRequired},
		{"empty account", "국민은행", " ", MsgRefundRequired},
		{"bank too long", "가나다라마바사아", "123", MsgInvalidBank},
		{"latin bank", "KB", "123", MsgInvalidBank},
		{"account with dash", "국민은행", "123-456", MsgInvalidAccount},
		{"account too long", "국민은행", "123456789012345678901", MsgInvalidAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			f := foundFlow(t, client)
			_, err := f.RequestCancel()
			require.NoError(t, err)
			client.On("CancelReservation", mock.Anything, int64(12)).Return(int64(99), nil).Once()
			_, err = f.ConfirmCancel(context.Background())
			require.NoError(t, err)

			snap, err := f.SubmitRefund(context.Background(), tt.bank, tt.account)
			msg, ok := validation.UserMessage(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, StateRefundDetails, snap.State)
			client.AssertNotCalled(t, "SaveRefundAccount", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestFlow_DuplicateRequestAndReset(t *testing.T) {
	release := make(chan struct{})
	client := &mockClient{}
	client.On("ConfirmReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(waitReservation(), nil).Once()

	f := newTestFlow(client)
	done := make(chan error, 1)
	go func() {
		_, err := f.Lookup(context.Background(), "12", "홍길동", "01012345678")
		done <- err
	}()

	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.inFlight
	}, 2*time.Second, 5*time.Millisecond)

	_, err := f.Lookup(context.Background(), "12", "홍길동", "01012345678")
	assert.ErrorIs(t, err, ErrRequestInProgress)

	// Сброс во время запроса: ответ будет отброшен
	f.Reset()
	close(release)
	assert.ErrorIs(t, <-done, ErrStaleResponse)
	assert.Equal(t, StateLookup, f.State())
	assert.Nil(t, f.Snapshot().Reservation)
}

func TestFlow_ResetFromAnyState(t *testing.T) {
	client := &mockClient{}
	f := foundFlow(t, client)
	_, err := f.RequestCancel()
	require.NoError(t, err)

	snap := f.Reset()
	assert.Equal(t, StateLookup, snap.State)
	assert.Nil(t, snap.Reservation)

	_, err = f.RequestCancel()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestFlow_RefundUsesCancelIDCapturedAtStart(t *testing.T) {
	client := &mockClient{}
	f := foundFlow(t, client)
	ctx := context.Background()

	_, err := f.RequestCancel()
	require.NoError(t, err)
	client.On("CancelReservation", mock.Anything, int64(12)).Return(int64(99), nil).Once()
	_, err = f.ConfirmCancel(ctx)
	require.NoError(t, err)

	// Сброс во время сохранения реквизитов
	client.On("SaveRefundAccount", mock.Anything, int64(99), domain.RefundAccount{Bank: "국민은행", Account: "12345678"}).
		Run(func(mock.Arguments) { f.Reset() }).
		Return(nil).Once()

	_, err = f.SubmitRefund(ctx, "국민은행", "12345678")
	assert.ErrorIs(t, err, ErrStaleResponse)
	assert.Equal(t, StateLookup, f.State())
	assert.Zero(t, f.Snapshot().CancelID)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "SaveRefundAccount", mock.Anything, int64(0), mock.Anything)
}
