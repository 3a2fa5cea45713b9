package dashboard

import (
	"context"
	"net/http"
	"testing"
	"time"

	"mutant-admin/internal/client"
	"mutant-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishCall struct {
	id        string
	published bool
}

type fakeMissions struct {
	page      *entity.Page[entity.Mission]
	err       error
	lists     int
	publishes []publishCall
	deletes   []string
}

func (f *fakeMissions) List(context.Context, int, int) (*entity.Page[entity.Mission], error) {
	f.lists++

	return f.page, nil
}

func (f *fakeMissions) SetPublished(_ context.Context, id string, published bool) error {
	f.publishes = append(f.publishes, publishCall{id: id, published: published})

	return f.err
}

func (f *fakeMissions) Delete(_ context.Context, id string) error {
	f.deletes = append(f.deletes, id)

	return f.err
}

func missionPage() *entity.Page[entity.Mission] {
	return &entity.Page[entity.Mission]{
		Items: []entity.Mission{
			{ID: "m1", Title: "Intro", Publication: entity.PublicationDraft},
			{ID: "m2", Title: "Advanced", Publication: entity.PublicationPublished},
		},
		Total: 2,
	}
}

func TestMissionBoard_PublishPatchesWithoutRefetch(t *testing.T) {
	source := &fakeMissions{page: missionPage()}
	scheduler := &manualScheduler{}
	board := NewMissionBoard(source, BoardOptions{Scheduler: scheduler})
	require.NoError(t, board.Load(context.Background()))

	board.Menu.Toggle("m1")
	require.NoError(t, board.SetPublished(context.Background(), "m1", true))

	assert.Equal(t, []publishCall{{id: "m1", published: true}}, source.publishes)
	view := board.View()
	assert.Equal(t, entity.PublicationPublished, view.Items[0].Publication)
	assert.Equal(t, "Published", view.Items[0].Publication.Label())
	assert.Empty(t, view.OpenMenu)
	assert.Equal(t, "Mission published", view.Notice.Message)

	scheduler.Advance(time.Minute)
	assert.Equal(t, 1, source.lists)

	require.NoError(t, board.SetPublished(context.Background(), "m2", false))
	assert.Equal(t, "Draft", board.View().Items[1].Publication.Label())
	assert.Equal(t, 1, source.lists)
}

func TestMissionBoard_PublishFailureLeavesRow(t *testing.T) {
	source := &fakeMissions{page: missionPage()}
	board := NewMissionBoard(source, BoardOptions{Scheduler: &manualScheduler{}})
	require.NoError(t, board.Load(context.Background()))

	source.err = &client.APIError{Status: http.StatusForbidden, Message: "Not allowed"}
	require.Error(t, board.SetPublished(context.Background(), "m1", true))

	view := board.View()
	assert.Equal(t, entity.PublicationDraft, view.Items[0].Publication)
	assert.Equal(t, Notice{Kind: NoticeError, Message: "Not allowed"}, *view.Notice)
}

func TestMissionBoard_DeleteRemovesRow(t *testing.T) {
	source := &fakeMissions{page: missionPage()}
	board := NewMissionBoard(source, BoardOptions{Scheduler: &manualScheduler{}})
	require.NoError(t, board.Load(context.Background()))

	assert.ErrorIs(t, board.Delete(context.Background(), "m1", false), ErrCancelled)
	assert.Empty(t, source.deletes)

	require.NoError(t, board.Delete(context.Background(), "m1", true))

	view := board.View()
	require.Len(t, view.Items, 1)
	assert.Equal(t, "m2", view.Items[0].ID)
	assert.Equal(t, 1, view.Total)
	assert.Equal(t, 1, source.lists)
}
