package content

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

func (m *mockClient) GetNoticeBoard(ctx context.Context) (*domain.NoticeBoard, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).(*domain.NoticeBoard)
	return b, args.Error(1)
}

func (m *mockClient) CreateNotice(ctx context.Context, n domain.Notice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockClient) CreateFaq(ctx context.Context, f domain.Faq) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockClient) GetLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]domain.Location)
	return l, args.Error(1)
}

var kst = time.FixedZone("KST", 9*3600)

func newTestService(client BackendClient) *Service {
	svc := NewService(client, kst, logger.NewNop())
	// 2026-10-17 20:00 UTC == 2026-10-18 05:00 KST
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC) }
	return svc
}

func TestService_Board(t *testing.T) {
	client := &mockClient{}
	client.On("GetNoticeBoard", mock.Anything).Return(&domain.NoticeBoard{
		Notices: []domain.Notice{
			{ID: 1, Title: "old", Content: "**공지**", Date: "2026-09-01"},
			{ID: 2, Title: "new", Content: "<script>alert(1)</script>", Date: "2026-10-01"},
		},
		Faqs: []domain.Faq{
			{ID: 2, Question: "B", Answer: "line1\nline2"},
			{ID: 1, Question: "A", Answer: "a"},
		},
	}, nil)

	board, err := newTestService(client).Board(context.Background())
	require.NoError(t, err)

	require.Len(t, board.Notices, 2)
	assert.Equal(t, "new", board.Notices[0].Title)
	assert.NotContains(t, board.Notices[0].ContentHTML, "<script>")
	assert.Contains(t, board.Notices[1].ContentHTML, "<strong>공지</strong>")

	require.Len(t, board.Faqs, 2)
	assert.Equal(t, int64(1), board.Faqs[0].ID)
	assert.Contains(t, board.Faqs[1].AnswerHTML, "<br>")
}

func TestService_Board_BackendDown(t *testing.T) {
	client := &mockClient{}
	client.On("GetNoticeBoard", mock.Anything).Return(nil, fmt.Errorf("%w: 503", keystone.ErrUnavailable))

	_, err := newTestService(client).Board(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestService_CreateNotice(t *testing.T) {
	client := &mockClient{}
	client.On("CreateNotice", mock.Anything, domain.Notice{
		Title:   "신규 테마 오픈",
		Content: "곧 만나요",
		Type:    domain.NoticeNewTheme,
		Date:    "2026-10-18",
	}).Return(nil).Once()

	err := newTestService(client).CreateNotice(context.Background(), domain.Notice{
		Title:   " 신규 테마 오픈 ",
		Content: "곧 만나요",
		Type:    "NEW_THEME",
	})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestService_CreateNotice_Validation(t *testing.T) {
	tests := []struct {
		name    string
		notice  domain.Notice
		wantMsg string
	}{
		{"no title", domain.Notice{Content: "c", Type: domain.NoticeEvent}, MsgTitleRequired},
		{"no content", domain.Notice{Title: "t", Type: domain.NoticeEvent}, MsgContentRequired},
		{"bad type", domain.Notice{Title: "t", Content: "c", Type: "promo"}, MsgInvalidType},
		{"bad date", domain.Notice{Title: "t", Content: "c", Type: domain.NoticeEvent, Date: "18/10/2026"}, MsgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			err := newTestService(client).CreateNotice(context.Background(), tt.notice)
			msg, ok := validation.UserMessage(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, msg)
			client.AssertNotCalled(t, "CreateNotice", mock.Anything, mock.Anything)
		})
	}
}

func TestService_CreateFaq(t *testing.T) {
	client := &mockClient{}
	client.On("CreateFaq", mock.Anything, domain.Faq{Question: "주차 가능한가요?", Answer: "네"}).Return(nil).Once()
	svc := newTestService(client)

	require.NoError(t, svc.CreateFaq(context.Background(), domain.Faq{Question: "주차 가능한가요?", Answer: "네"}))

	err := svc.CreateFaq(context.Background(), domain.Faq{Question: "q"})
	msg, _ := validation.UserMessage(err)
	assert.Equal(t, MsgAnswerRequired, msg)
	client.AssertExpectations(t)
}

func TestService_Locations(t *testing.T) {
	client := &mockClient{}
	client.On("GetLocations", mock.Anything).Return([]domain.Location{{ID: 1, Name: "강남점"}}, nil)

	locations, err := newTestService(client).Locations(context.Background())
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}
