package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/keystone-front/internal/domain"
	getAvailableSlots "github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
	"github.com/m04kA/keystone-front/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/themes/{themeId}/available-slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{ThemeID: 7, Date: "2099-03-14"}).Return(&getAvailableSlots.Response{
		ThemeID: 7,
		Date:    "2099-03-14",
		Slots: []domain.TimeSlot{
			{ID: 1, StartTime: "10:00", EndTime: "11:00"},
			{ID: 2, StartTime: "14:00", Reserved: true},
		},
	}, nil)

	rec := serve(NewHandler(uc, logger.NewNop()), "/themes/7/available-slots?date=2099-03-14")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ThemeID)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime)
	assert.Equal(t, "11:00", resp.Slots[0].EndTime)
	assert.True(t, resp.Slots[1].Reserved)
	assert.False(t, resp.Degraded)
}

func TestHandler_DegradedIsNotAnError(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		ThemeID: 7, Date: "2099-03-14", Slots: []domain.TimeSlot{}, Degraded: true,
	}, nil)

	rec := serve(NewHandler(uc, logger.NewNop()), "/themes/7/available-slots?date=2099-03-14")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"themeId":7,"date":"2099-03-14","slots":[],"degraded":true}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		ucErr   error
		wantMsg string
		want    int
	}{
		{"bad theme id", "/themes/abc/available-slots?date=2099-03-14", nil, msgInvalidThemeID, http.StatusBadRequest},
		{"missing date", "/themes/7/available-slots", nil, msgMissingDate, http.StatusBadRequest},
		{"invalid date", "/themes/7/available-slots?date=x", fmt.Errorf("%w: x", getAvailableSlots.ErrInvalidDate), msgInvalidDate, http.StatusBadRequest},
		{"past date", "/themes/7/available-slots?date=2001-01-01", getAvailableSlots.ErrDateInPast, msgDateInPast, http.StatusBadRequest},
		{"theme not found", "/themes/7/available-slots?date=2099-03-14", getAvailableSlots.ErrThemeNotFound, msgThemeNotFound, http.StatusNotFound},
		{"unexpected", "/themes/7/available-slots?date=2099-03-14", assert.AnError, "", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(NewHandler(uc, logger.NewNop()), tt.target)
			assert.Equal(t, tt.want, rec.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.wantMsg)
			}
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
