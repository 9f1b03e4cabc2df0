package get_available_slots

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/integrations/keystone"
	"github.com/m04kA/keystone-front/pkg/logger"
	"github.com/m04kA/keystone-front/pkg/types"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeClient struct {
	mu       sync.Mutex
	calls    map[int64]int
	inFlight int32
	maxSeen  int32
	delay    time.Duration
	fn       func(themeID int64, date string) ([]domain.TimeSlot, error)
}

func (f *fakeClient) GetAvailableTimesWithGracefulDegradation(ctx context.Context, themeID int64, date string) ([]domain.TimeSlot, error) {
	cur := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		seen := atomic.LoadInt32(&f.maxSeen)
		if cur <= seen || atomic.CompareAndSwapInt32(&f.maxSeen, seen, cur) {
			break
		}
	}

	f.mu.Lock()
	if f.calls == nil {
		f.calls = map[int64]int{}
	}
	f.calls[themeID]++
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.fn(themeID, date)
}

var seoul = time.FixedZone("KST", 9*3600)

func newTestUseCase(client BackendClient, maxParallel int) *UseCase {
	// 2026-10-18 00:30 KST == 2026-10-17 15:30 UTC
	now := time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)
	return NewUseCase(client, maxParallel, seoul, nil, logger.NewNop()).WithTimeProvider(fixedTime{now})
}

func slot(id int64, start string, reserved bool) domain.TimeSlot {
	return domain.TimeSlot{ID: id, StartTime: types.TimeString(start), Reserved: reserved}
}

func TestExecute_OrdersAndDeduplicates(t *testing.T) {
	client := &fakeClient{fn: func(int64, string) ([]domain.TimeSlot, error) {
		return []domain.TimeSlot{
			slot(3, "14:00", false),
			slot(1, "10:00", true),
			slot(2, "12:00", false),
			slot(1, "18:00", false),
		}, nil
	}}

	resp, err := newTestUseCase(client, 2).Execute(context.Background(), &Request{ThemeID: 1, Date: "2026-10-18"})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{resp.Slots[0].ID, resp.Slots[1].ID, resp.Slots[2].ID})
	assert.True(t, resp.Slots[0].Reserved, "first occurrence wins")
	assert.False(t, resp.Degraded)
}

func TestExecute_DateValidation(t *testing.T) {
	client := &fakeClient{fn: func(int64, string) ([]domain.TimeSlot, error) { return nil, nil }}
	uc := newTestUseCase(client, 2)

	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{"today in business zone", "2026-10-18", nil},
		{"tomorrow", "2026-10-19", nil},
		{"yesterday in business zone", "2026-10-17", ErrDateInPast},
		{"garbage", "18.10.2026", ErrInvalidDate},
		{"empty", "", ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{ThemeID: 1, Date: tt.date})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, 2, client.calls[1], "invalid dates never reach the backend")
}

func TestExecute_Degrades(t *testing.T) {
	client := &fakeClient{fn: func(int64, string) ([]domain.TimeSlot, error) {
		return nil, fmt.Errorf("%w: timeout", keystone.ErrServiceDegraded)
	}}

	resp, err := newTestUseCase(client, 2).Execute(context.Background(), &Request{ThemeID: 1, Date: "2026-10-20"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
	assert.True(t, resp.Degraded)
}

func TestExecute_ThemeNotFound(t *testing.T) {
	client := &fakeClient{fn: func(int64, string) ([]domain.TimeSlot, error) {
		return nil, fmt.Errorf("%w: theme", keystone.ErrNotFound)
	}}

	_, err := newTestUseCase(client, 2).Execute(context.Background(), &Request{ThemeID: 9, Date: "2026-10-20"})
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestExecuteForCatalog_IsolatesFailures(t *testing.T) {
	client := &fakeClient{
		delay: 10 * time.Millisecond,
		fn: func(themeID int64, _ string) ([]domain.TimeSlot, error) {
			switch themeID {
			case 2:
				return nil, fmt.Errorf("%w: 503", keystone.ErrServiceDegraded)
			case 4:
				return nil, fmt.Errorf("%w: gone", keystone.ErrNotFound)
			default:
				return []domain.TimeSlot{slot(themeID*10+1, "15:00", false), slot(themeID*10, "11:00", false)}, nil
			}
		},
	}

	resp, err := newTestUseCase(client, 2).ExecuteForCatalog(context.Background(), &CatalogRequest{
		ThemeIDs: []int64{1, 2, 3, 4, 5, 1},
		Date:     "2026-10-20",
	})
	require.NoError(t, err)
	require.Len(t, resp.ByTheme, 5)

	for _, id := range []int64{1, 3, 5} {
		r := resp.ByTheme[id]
		require.NotNil(t, r)
		require.Len(t, r.Slots, 2)
		assert.Equal(t, types.TimeString("11:00"), r.Slots[0].StartTime)
		assert.False(t, r.Degraded)
	}
	for _, id := range []int64{2, 4} {
		assert.Empty(t, resp.ByTheme[id].Slots)
		assert.True(t, resp.ByTheme[id].Degraded)
	}

	assert.Equal(t, 1, client.calls[1], "duplicate theme ids are fetched once")
	assert.LessOrEqual(t, atomic.LoadInt32(&client.maxSeen), int32(2))
}

func TestExecuteForCatalog_RejectsPastDate(t *testing.T) {
	client := &fakeClient{fn: func(int64, string) ([]domain.TimeSlot, error) { return nil, nil }}

	_, err := newTestUseCase(client, 2).ExecuteForCatalog(context.Background(), &CatalogRequest{
		ThemeIDs: []int64{1},
		Date:     "2026-01-01",
	})
	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Empty(t, client.calls)
}
