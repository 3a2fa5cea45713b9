package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"mutant-admin/internal/client"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"

	"github.com/pkg/errors"
)

// MissionView is a snapshot of the mission board.
type MissionView struct {
	Items      []entity.Mission
	Page       int
	Limit      int
	Total      int
	TotalPages int
	Loading    bool
	Error      string
	Notice     *Notice
	OpenMenu   string
}

// MissionBoard lists missions. Unlike the moderation boards it patches its
// rows in place once the gateway accepted a change and never refetches.
type MissionBoard struct {
	source MissionSource
	logger *slog.Logger

	Menu    *MenuState
	Notices *Notices

	mu         sync.Mutex
	items      []entity.Mission
	page       int
	limit      int
	total      int
	totalPages int
	loading    bool
	err        string
}

func NewMissionBoard(source MissionSource, opts BoardOptions) *MissionBoard {
	opts = opts.withDefaults()

	return &MissionBoard{
		source:  source,
		logger:  opts.Logger.With(slog.String("board", "missions")),
		Menu:    &MenuState{},
		Notices: NewNotices(opts.Scheduler, opts.Timings),
		page:    1,
		limit:   defaultPageLimit,
	}
}

func (b *MissionBoard) View() MissionView {
	b.mu.Lock()
	view := MissionView{
		Items:      append([]entity.Mission(nil), b.items...),
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

func (b *MissionBoard) Load(ctx context.Context) error {
	b.mu.Lock()
	page, limit := b.page, b.limit
	b.loading = true
	b.mu.Unlock()

	result, err := b.source.List(ctx, page, limit)

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
		b.logger.Warn("Failed to load missions", slog.Any("error", err))

		return err
	}

	b.err = ""
	b.items = result.Items
	b.total = result.Total
	b.totalPages = result.TotalPagesOrDerived()

	return nil
}

// SetPage moves to page and reloads.
func (b *MissionBoard) SetPage(ctx context.Context, page int) error {
	if page > 0 {
		b.mu.Lock()
		b.page = page
		b.mu.Unlock()
	}

	return b.Load(ctx)
}

// SetPublished publishes or unpublishes id and patches the row on success.
func (b *MissionBoard) SetPublished(ctx context.Context, id string, published bool) error {
	if err := b.source.SetPublished(ctx, id, published); err != nil {
		b.Notices.Error(client.ErrorMessage(err))

		return err
	}

	b.mu.Lock()
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].SetPublished(published)
		}
	}
	b.mu.Unlock()

	b.Menu.ClickOutside()
	if published {
		b.Notices.Success("Mission published")
	} else {
		b.Notices.Success("Mission unpublished")
	}

	return nil
}

// Delete removes id after confirmation and drops the row locally.
func (b *MissionBoard) Delete(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return ErrCancelled
	}
	if err := b.source.Delete(ctx, id); err != nil {
		b.Notices.Error(client.ErrorMessage(err))

		return err
	}

	b.mu.Lock()
	kept := b.items[:0]
	for _, mission := range b.items {
		if mission.ID != id {
			kept = append(kept, mission)
		}
	}
	if removed := len(b.items) - len(kept); removed > 0 && b.total >= removed {
		b.total -= removed
	}
	b.items = kept
	b.mu.Unlock()

	b.Menu.ClickOutside()
	b.Notices.Success("Mission deleted")

	return nil
}
