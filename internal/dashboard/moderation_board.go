package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"mutant-admin/internal/client"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"

	"github.com/pkg/errors"
)

const defaultPageLimit = 10

// ErrCancelled is returned when the operator backed out of a prompt or a
// confirmation. No request was sent.
var ErrCancelled = errors.New("action cancelled")

// Action is a row operation offered by a board.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionDelete  Action = "delete"
)

// Prompt asks the operator for a value. ok is false when the operator dismissed it.
type Prompt func() (value string, ok bool)

// AdminIdentity returns the id of the signed-in admin.
type AdminIdentity func() string

// ModerationView is a snapshot of a board for rendering.
type ModerationView[T entity.Moderated] struct {
	Items      []T
	Filter     entity.StatusFilter
	Page       int
	Limit      int
	Total      int
	TotalPages int
	Loading    bool
	Error      string
	Notice     *Notice
	OpenMenu   string
}

// ModerationBoard is the list-and-review screen shared by KYC and refunds.
// After a successful action the list is reloaded once after the refetch
// delay; rows are never patched locally.
type ModerationBoard[T entity.Moderated] struct {
	source    ModerationSource[T]
	scheduler Scheduler
	timings   Timings
	adminID   AdminIdentity
	logger    *slog.Logger

	Menu    *MenuState
	Notices *Notices

	mu         sync.Mutex
	items      []T
	filter     entity.StatusFilter
	page       int
	limit      int
	total      int
	totalPages int
	loading    bool
	err        string

	pending sync.WaitGroup
}

// BoardOptions are shared by every board constructor.
type BoardOptions struct {
	Scheduler Scheduler
	Timings   Timings
	AdminID   AdminIdentity
	Logger    *slog.Logger
}

func (o BoardOptions) withDefaults() BoardOptions {
	if o.Scheduler == nil {
		o.Scheduler = SystemScheduler()
	}
	if o.Timings == (Timings{}) {
		o.Timings = DefaultTimings()
	}
	if o.AdminID == nil {
		o.AdminID = func() string { return "" }
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

func NewModerationBoard[T entity.Moderated](source ModerationSource[T], opts BoardOptions) *ModerationBoard[T] {
	opts = opts.withDefaults()

	return &ModerationBoard[T]{
		source:    source,
		scheduler: opts.Scheduler,
		timings:   opts.Timings,
		adminID:   opts.AdminID,
		logger:    opts.Logger.With(slog.String("board", source.Label())),
		Menu:      &MenuState{},
		Notices:   NewNotices(opts.Scheduler, opts.Timings),
		filter:    entity.FilterAll,
		page:      1,
		limit:     defaultPageLimit,
	}
}

// View returns the current state.
func (b *ModerationBoard[T]) View() ModerationView[T] {
	b.mu.Lock()
	view := ModerationView[T]{
		Items:      append([]T(nil), b.items...),
		Filter:     b.filter,
		Page:       b.page,
		Limit:      b.limit,
		Total:      b.total,
		TotalPages: b.totalPages,
		Loading:    b.loading,
		Error:      b.err,
	}
	b.mu.Unlock()

	if notice, ok := b.Notices.Current(); ok {
		view.Notice = &notice
	}
	view.OpenMenu = b.Menu.Open()

	return view
}

// Load fetches the current page with the current filter. In-flight loads are
// not cancelled; the last answer wins.
func (b *ModerationBoard[T]) Load(ctx context.Context) error {
	b.mu.Lock()
	query := entity.ListQuery{Status: b.filter, Page: b.page, Limit: b.limit}
	b.loading = true
	b.mu.Unlock()

	page, err := b.source.List(ctx, query)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false

	if err != nil {
		b.err = client.ErrorMessage(err)
		if errors.Is(err, domainerrors.ErrUnexpectedFormat) {
			b.items = nil
			b.total = 0
			b.totalPages = 0
		}
		b.logger.Warn("Failed to load list", slog.Any("error", err))

		return err
	}

	b.err = ""
	b.items = page.Items
	b.total = page.Total
	b.totalPages = page.TotalPagesOrDerived()
	if page.Page > 0 {
		b.page = page.Page
	}
	if page.Limit > 0 {
		b.limit = page.Limit
	}

	return nil
}

// SetFilter switches the status filter and reloads from the first page.
func (b *ModerationBoard[T]) SetFilter(ctx context.Context, filter entity.StatusFilter) error {
	b.mu.Lock()
	b.filter = filter
	b.page = 1
	b.mu.Unlock()

	return b.Load(ctx)
}

// SetPage moves to page and reloads. A non-positive limit keeps the current one.
func (b *ModerationBoard[T]) SetPage(ctx context.Context, page, limit int) error {
	b.mu.Lock()
	if page > 0 {
		b.page = page
	}
	if limit > 0 {
		b.limit = limit
	}
	b.mu.Unlock()

	return b.Load(ctx)
}

// SetQuery replaces filter, page and limit at once and reloads. Zero page
// or limit keep their current value.
func (b *ModerationBoard[T]) SetQuery(ctx context.Context, query entity.ListQuery) error {
	b.mu.Lock()
	if query.Status != "" {
		b.filter = query.Status
	}
	if query.Page > 0 {
		b.page = query.Page
	}
	if query.Limit > 0 {
		b.limit = query.Limit
	}
	b.mu.Unlock()

	return b.Load(ctx)
}

// Actions lists what the row menu offers for record. Approve and reject are
// only offered while the record is pending.
func (b *ModerationBoard[T]) Actions(record T) []Action {
	var actions []Action
	if record.ModerationState().IsPending() {
		actions = append(actions, ActionApprove, ActionReject)
	}
	if _, ok := b.source.(Deleter); ok {
		actions = append(actions, ActionDelete)
	}

	return actions
}

// Find walks the pages with the all filter until it sees the record with id.
// The board is left on the page holding it.
func (b *ModerationBoard[T]) Find(ctx context.Context, id string) (T, bool, error) {
	var zero T

	b.mu.Lock()
	b.filter = entity.FilterAll
	b.mu.Unlock()

	for page := 1; ; page++ {
		b.mu.Lock()
		b.page = page
		b.mu.Unlock()

		if err := b.Load(ctx); err != nil {
			return zero, false, err
		}
		if record, ok := b.record(id); ok {
			return record, true, nil
		}

		b.mu.Lock()
		totalPages := b.totalPages
		b.mu.Unlock()
		if page >= totalPages {
			return zero, false, nil
		}
	}
}

func (b *ModerationBoard[T]) record(id string) (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, item := range b.items {
		if item.Identity() == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// checkTransition refuses to move a loaded record that is no longer pending.
// Records the board has not loaded are left to the gateway.
func (b *ModerationBoard[T]) checkTransition(id string, next entity.ModerationStatus) error {
	record, ok := b.record(id)
	if !ok {
		return nil
	}

	current := record.ModerationState()
	if current.CanTransition(next) {
		return nil
	}

	err := domainerrors.ErrInvalidTransition.WithDetails(string(current) + " -> " + string(next))
	b.Notices.Error(b.source.Label() + " is already " + string(current))

	return err
}

// Approve approves the record with the given id.
func (b *ModerationBoard[T]) Approve(ctx context.Context, id, reason string) error {
	if err := b.checkTransition(id, entity.StatusApproved); err != nil {
		return err
	}

	err := b.source.Approve(ctx, id, reason, b.adminID())

	return b.settleAction(ctx, err, b.source.Label()+" approved")
}

// Reject asks prompt for a reason. A dismissed or blank prompt cancels
// without contacting the gateway.
func (b *ModerationBoard[T]) Reject(ctx context.Context, id string, prompt Prompt) error {
	if err := b.checkTransition(id, entity.StatusRejected); err != nil {
		return err
	}

	reason, ok := prompt()
	reason = strings.TrimSpace(reason)
	if !ok || reason == "" {
		return ErrCancelled
	}

	err := b.source.Reject(ctx, id, reason, b.adminID())

	return b.settleAction(ctx, err, b.source.Label()+" rejected")
}

// Delete removes the record after confirmation.
func (b *ModerationBoard[T]) Delete(ctx context.Context, id string, confirm bool) error {
	deleter, ok := b.source.(Deleter)
	if !ok {
		return errors.Errorf("%s records cannot be deleted", b.source.Label())
	}
	if !confirm {
		return ErrCancelled
	}

	err := deleter.Delete(ctx, id)

	return b.settleAction(ctx, err, b.source.Label()+" record deleted")
}

func (b *ModerationBoard[T]) settleAction(ctx context.Context, err error, success string) error {
	if err != nil {
		b.Notices.Error(client.ErrorMessage(err))
		b.logger.Warn("Action failed", slog.Any("error", err))

		return err
	}

	b.Menu.ClickOutside()
	b.Notices.Success(success)
	b.scheduleRefetch(ctx)

	return nil
}

func (b *ModerationBoard[T]) scheduleRefetch(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	b.pending.Add(1)
	b.scheduler.AfterFunc(b.timings.RefetchDelay, func() {
		defer b.pending.Done()

		if err := b.Load(ctx); err != nil {
			b.logger.Warn("Refetch after action failed", slog.Any("error", err))
		}
	})
}

// Settle blocks until every scheduled refetch has run.
func (b *ModerationBoard[T]) Settle() {
	b.pending.Wait()
}
