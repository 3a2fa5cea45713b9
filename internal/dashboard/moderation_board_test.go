package dashboard

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"mutant-admin/internal/client"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decisionCall struct {
	id      string
	reason  string
	adminID string
}

// fakeKYC answers List with pages in order, repeating the last one.
type fakeKYC struct {
	mu        sync.Mutex
	pages     []*entity.Page[entity.KYCRecord]
	listErr   error
	actionErr error
	queries   []entity.ListQuery
	approvals []decisionCall
	rejects   []decisionCall
	deletes   []string
}

func (f *fakeKYC) Label() string { return "KYC" }

func (f *fakeKYC) List(_ context.Context, query entity.ListQuery) (*entity.Page[entity.KYCRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries = append(f.queries, query)
	if f.listErr != nil {
		return nil, f.listErr
	}
	idx := len(f.queries) - 1
	if idx >= len(f.pages) {
		idx = len(f.pages) - 1
	}

	return f.pages[idx], nil
}

func (f *fakeKYC) Approve(_ context.Context, id, reason, adminID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.approvals = append(f.approvals, decisionCall{id: id, reason: reason, adminID: adminID})

	return f.actionErr
}

func (f *fakeKYC) Reject(_ context.Context, id, reason, adminID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rejects = append(f.rejects, decisionCall{id: id, reason: reason, adminID: adminID})

	return f.actionErr
}

func (f *fakeKYC) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deletes = append(f.deletes, id)

	return f.actionErr
}

func (f *fakeKYC) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.queries)
}

// fakeRefunds has no Delete.
type fakeRefunds struct{}

func (fakeRefunds) Label() string { return "Refund" }

func (fakeRefunds) List(context.Context, entity.ListQuery) (*entity.Page[entity.Refund], error) {
	return &entity.Page[entity.Refund]{}, nil
}

func (fakeRefunds) Approve(context.Context, string, string, string) error { return nil }

func (fakeRefunds) Reject(context.Context, string, string, string) error { return nil }

func kycRecord(userID string, status entity.ModerationStatus) entity.KYCRecord {
	return entity.KYCRecord{ID: "kyc-" + userID, User: entity.RefID[entity.User](userID), Status: status}
}

func newTestKYCBoard(t *testing.T, source *fakeKYC) (*ModerationBoard[entity.KYCRecord], *manualScheduler) {
	t.Helper()

	scheduler := &manualScheduler{}
	board := NewModerationBoard[entity.KYCRecord](source, BoardOptions{
		Scheduler: scheduler,
		Timings:   DefaultTimings(),
		AdminID:   func() string { return "admin-1" },
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return board, scheduler
}

func TestModerationBoard_ActionsOnlyForPending(t *testing.T) {
	kyc, _ := newTestKYCBoard(t, &fakeKYC{})

	assert.Equal(t, []Action{ActionApprove, ActionReject, ActionDelete}, kyc.Actions(kycRecord("u1", entity.StatusPending)))
	assert.Equal(t, []Action{ActionDelete}, kyc.Actions(kycRecord("u1", entity.StatusApproved)))
	assert.Equal(t, []Action{ActionDelete}, kyc.Actions(kycRecord("u1", entity.StatusRejected)))

	refunds := NewModerationBoard[entity.Refund](fakeRefunds{}, BoardOptions{Scheduler: &manualScheduler{}})
	assert.Equal(t, []Action{ActionApprove, ActionReject}, refunds.Actions(entity.Refund{ID: "r1", Status: entity.StatusPending}))
	assert.Empty(t, refunds.Actions(entity.Refund{ID: "r1", Status: entity.StatusApproved}))
}

func TestModerationBoard_LoadPaging(t *testing.T) {
	source := &fakeKYC{pages: []*entity.Page[entity.KYCRecord]{
		{Items: []entity.KYCRecord{kycRecord("u1", entity.StatusPending), kycRecord("u2", entity.StatusPending)}, Page: 1, Limit: 10, Total: 2, TotalPages: 3},
		{Items: []entity.KYCRecord{kycRecord("u1", entity.StatusPending)}, Total: 25, Limit: 10},
	}}
	board, _ := newTestKYCBoard(t, source)

	require.NoError(t, board.SetFilter(context.Background(), entity.FilterPending))
	view := board.View()
	assert.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.TotalPages, "reported totalPages is trusted over the item count")
	assert.Equal(t, entity.ListQuery{Status: entity.FilterPending, Page: 1, Limit: 10}, source.queries[0])
	assert.Equal(t, "pending", source.queries[0].Values().Get("status"))

	require.NoError(t, board.SetFilter(context.Background(), entity.FilterAll))
	assert.False(t, source.queries[1].Values().Has("status"))
	assert.Equal(t, 3, board.View().TotalPages, "derived from total and limit")
}

func TestModerationBoard_UnexpectedFormatRendersEmpty(t *testing.T) {
	source := &fakeKYC{pages: []*entity.Page[entity.KYCRecord]{
		{Items: []entity.KYCRecord{kycRecord("u1", entity.StatusPending)}, Total: 1},
	}}
	board, _ := newTestKYCBoard(t, source)
	require.NoError(t, board.Load(context.Background()))

	source.listErr = domainerrors.ErrUnexpectedFormat.WithDetails("/api/admin/kyc: data is not an array")
	err := board.Load(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrUnexpectedFormat))
	view := board.View()
	assert.Empty(t, view.Items)
	assert.Equal(t, "Unexpected response format", view.Error)
	assert.False(t, view.Loading)
}

func TestModerationBoard_LoadErrorKeepsRows(t *testing.T) {
	source := &fakeKYC{pages: []*entity.Page[entity.KYCRecord]{
		{Items: []entity.KYCRecord{kycRecord("u1", entity.StatusPending)}, Total: 1},
	}}
	board, _ := newTestKYCBoard(t, source)
	require.NoError(t, board.Load(context.Background()))

	source.listErr = &client.APIError{Status: http.StatusServiceUnavailable, Message: "Backend unavailable"}
	require.Error(t, board.Load(context.Background()))

	view := board.View()
	assert.Len(t, view.Items, 1)
	assert.Equal(t, "Backend unavailable", view.Error)
}

func TestModerationBoard_ApproveRefetchesOnceAfterDelay(t *testing.T) {
	source := &fakeKYC{pages: []*entity.Page[entity.KYCRecord]{
		{Items: []entity.KYCRecord{kycRecord("u1", entity.StatusPending)}, Total: 1},
		{Items: []entity.KYCRecord{kycRecord("u1", entity.StatusApproved)}, Total: 1},
	}}
	board, scheduler := newTestKYCBoard(t, source)
	require.NoError(t, board.Load(context.Background()))

	board.Menu.Toggle("u1")
	require.NoError(t, board.Approve(context.Background(), "u1", ""))

	require.Len(t, source.approvals, 1)
	assert.Equal(t, decisionCall{id: "u1", adminID: "admin-1"}, source.approvals[0])

	view := board.View()
	assert.Empty(t, view.OpenMenu)
	require.NotNil(t, view.Notice)
	assert.Equal(t, Notice{Kind: NoticeSuccess, Message: "KYC approved"}, *view.Notice)
	assert.Equal(t, entity.StatusPending, view.Items[0].Status, "rows are not patched locally")
	assert.Equal(t, 1, source.listCalls())

	scheduler.Advance(1499 * time.Millisecond)
	assert.Equal(t, 1, source.listCalls())

	scheduler.Advance(time.Millisecond)
	board.Settle()
	assert.Equal(t, 2, source.listCalls())
	assert.Equal(t, entity.StatusApproved, board.View().Items[0].Status)

	scheduler.Advance(time.Minute)
	assert.Equal(t, 2, source.listCalls())
}

func TestModerationBoard_BlankRejectSendsNothing(t *testing.T) {
	source := &fakeKYC{}
	board, scheduler := newTestKYCBoard(t, source)

	tests := []struct {
		name   string
		prompt Prompt
	}{
		{name: "blank", prompt: func() (string, bool) { return "   ", true }},
		{name: "dismissed", prompt: func() (string, bool) { return "blurry scan", false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := board.Reject(context.Background(), "u1", tt.prompt)

			assert.ErrorIs(t, err, ErrCancelled)
			assert.Empty(t, source.rejects)
			assert.Nil(t, board.View().Notice)
			assert.Zero(t, scheduler.Pending())
		})
	}
}

func TestModerationBoard_RejectWithReason(t *testing.T) {
	source := &fakeKYC{pages: []*entity.Page[entity.KYCRecord]{{}}}
	board, scheduler := newTestKYCBoard(t, source)

	err := board.Reject(context.Background(), "u1", func() (string, bool) { return "  blurry scan ", true })
	require.NoError(t, err)

	require.Len(t, source.rejects, 1)
	assert.Equal(t, decisionCall{id: "u1", reason: "blurry scan", adminID: "admin-1"}, source.rejects[0])
	assert.Equal(t, "KYC rejected", board.View().Notice.Message)

	scheduler.Advance(DefaultTimings().RefetchDelay)
	board.Settle()
	assert.Equal(t, 1, source.listCalls())
}

func TestModerationBoard_ActionFailure(t *testing.T) {
	source := &fakeKYC{
		pages:     []*entity.Page[entity.KYCRecord]{{Items: []entity.KYCRecord{kycRecord("u1", entity.StatusPending)}}},
		actionErr: &client.APIError{Status: http.StatusConflict, Message: "KYC already reviewed"},
	}
	board, scheduler := newTestKYCBoard(t, source)
	require.NoError(t, board.Load(context.Background()))
	board.Menu.Toggle("u1")

	err := board.Approve(context.Background(), "u1", "")
	require.Error(t, err)

	view := board.View()
	require.NotNil(t, view.Notice)
	assert.Equal(t, Notice{Kind: NoticeError, Message: "KYC already reviewed"}, *view.Notice)
	assert.Equal(t, "u1", view.OpenMenu)
	assert.Len(t, view.Items, 1)

	scheduler.Advance(5 * time.Second)
	assert.Nil(t, board.View().Notice)
	assert.Equal(t, 1, source.listCalls(), "a failed action schedules no refetch")
}

func TestModerationBoard_DeleteNeedsConfirmation(t *testing.T) {
	source := &fakeKYC{pages: []*entity.Page[entity.KYCRecord]{{}}}
	board, scheduler := newTestKYCBoard(t, source)

	assert.ErrorIs(t, board.Delete(context.Background(), "u1", false), ErrCancelled)
	assert.Empty(t, source.deletes)

	require.NoError(t, board.Delete(context.Background(), "u1", true))
	assert.Equal(t, []string{"u1"}, source.deletes)
	assert.Equal(t, "KYC record deleted", board.View().Notice.Message)

	scheduler.Advance(DefaultTimings().RefetchDelay)
	board.Settle()
	assert.Equal(t, 1, source.listCalls())

	refunds := NewModerationBoard[entity.Refund](fakeRefunds{}, BoardOptions{Scheduler: scheduler})
	assert.Error(t, refunds.Delete(context.Background(), "r1", true))
}

func TestModerationBoard_SettledRecordsRefuseTransitions(t *testing.T) {
	source := &fakeKYC{pages: []*entity.Page[entity.KYCRecord]{
		{Items: []entity.KYCRecord{kycRecord("u1", entity.StatusRejected), kycRecord("u2", entity.StatusApproved)}, Total: 2},
	}}
	board, scheduler := newTestKYCBoard(t, source)
	require.NoError(t, board.Load(context.Background()))

	err := board.Approve(context.Background(), "u1", "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	require.NotNil(t, board.View().Notice)
	assert.Equal(t, Notice{Kind: NoticeError, Message: "KYC is already rejected"}, *board.View().Notice)

	prompted := false
	err = board.Reject(context.Background(), "u2", func() (string, bool) {
		prompted = true

		return "late", true
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.False(t, prompted, "no reason is asked for a settled record")

	assert.Empty(t, source.approvals)
	assert.Empty(t, source.rejects)
	assert.Zero(t, scheduler.Pending())
}

func TestModerationBoard_FindWalksPages(t *testing.T) {
	source := &fakeKYC{pages: []*entity.Page[entity.KYCRecord]{
		{Items: []entity.KYCRecord{kycRecord("u1", entity.StatusPending)}, Page: 1, Limit: 1, Total: 3, TotalPages: 3},
		{Items: []entity.KYCRecord{kycRecord("u2", entity.StatusRejected)}, Page: 2, Limit: 1, Total: 3, TotalPages: 3},
		{Items: []entity.KYCRecord{kycRecord("u3", entity.StatusPending)}, Page: 3, Limit: 1, Total: 3, TotalPages: 3},
	}}
	board, _ := newTestKYCBoard(t, source)

	record, found, err := board.Find(context.Background(), "u2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entity.StatusRejected, record.Status)
	assert.Equal(t, 2, board.View().Page)
	require.Len(t, source.queries, 2)
	assert.Equal(t, entity.ListQuery{Status: entity.FilterAll, Page: 1, Limit: 10}, source.queries[0])
	assert.Equal(t, 2, source.queries[1].Page)

	_, found, err = board.Find(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 5, source.listCalls(), "stops after the last reported page")
}
