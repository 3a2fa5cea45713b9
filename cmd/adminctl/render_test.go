package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"mutant-admin/config"
	"mutant-admin/internal/client"
	"mutant-admin/internal/dashboard"
	"mutant-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, handler http.HandlerFunc) *app {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := client.New(server.URL, client.NewMemoryStorage(), client.WithLogger(logger))

	return &app{
		client:  c,
		auth:    dashboard.NewAuthContext(c, logger),
		options: dashboard.BoardOptions{Logger: logger},
		logger:  logger,
		out:     &bytes.Buffer{},
	}
}

func TestRenderKYC(t *testing.T) {
	var query map[string][]string
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"data":[
			{"_id":"k1","userId":{"_id":"u1","firstName":"Ada","lastName":"Obi"},"status":"pending","bankDetails":{"bankName":"GTB"}},
			{"_id":"k2","userId":"u2","status":"approved"}
		],"page":1,"limit":10,"total":25,"totalPages":3}`)
	})

	fs := flag.NewFlagSet("kyc", flag.ContinueOnError)
	list := addListFlags(fs)
	require.NoError(t, fs.Parse([]string{"-status", "pending"}))

	board := kycBoard(app)
	require.NoError(t, list.load(context.Background(), board))
	renderKYC(app.out, board)

	assert.Equal(t, []string{"pending"}, query["status"])
	out := app.out.(*bytes.Buffer).String()
	assert.Contains(t, out, "Ada Obi")
	assert.Contains(t, out, "GTB")
	assert.Contains(t, out, "approve,reject,delete")
	assert.Contains(t, out, "Page 1 of 3 (25 total)")
}

func TestListFlags_RejectsUnknownStatus(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	fs := flag.NewFlagSet("refunds", flag.ContinueOnError)
	list := addListFlags(fs)
	require.NoError(t, fs.Parse([]string{"-status", "archived"}))

	assert.Error(t, list.load(context.Background(), refundBoard(app)))
}

func TestRenderMissions(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"data":[
			{"_id":"m1","title":"Go Basics","price":12000,"status":"published"},
			{"_id":"m2","title":"Intro","isFree":true,"isPublished":false}
		],"total":2}`)
	})

	board := dashboard.NewMissionBoard(dashboard.NewMissionSource(app.client), app.options)
	require.NoError(t, board.Load(context.Background()))
	renderMissions(app.out, board)

	out := app.out.(*bytes.Buffer).String()
	assert.Contains(t, out, "12,000")
	assert.Contains(t, out, "Published")
	assert.Contains(t, out, "Free")
	assert.Contains(t, out, "Draft")
}

func TestPrintNotice(t *testing.T) {
	var buf bytes.Buffer
	printNotice(&buf, nil)
	printNotice(&buf, &dashboard.Notice{Kind: dashboard.NoticeError, Message: "KYC already reviewed"})

	assert.Equal(t, "[ERROR] KYC already reviewed\n", buf.String())
	assert.Equal(t, "-", relative(nil))
	assert.Equal(t, "-", userName(entity.RefID[entity.User]("u1")))
}

func runCommand(t *testing.T, app *app, name string, args ...string) error {
	t.Helper()

	for _, cmd := range newCommands(&config.Config{}) {
		if cmd.name == name {
			require.NoError(t, cmd.flags.Parse(args))

			return cmd.run(context.Background(), app)
		}
	}
	t.Fatalf("unknown command %s", name)

	return nil
}

func TestKYCApprove_RefusesSettledRecord(t *testing.T) {
	var verifies atomic.Int32
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			verifies.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"data":[
			{"_id":"k1","userId":"u1","status":"rejected"}
		],"page":1,"limit":10,"total":1,"totalPages":1}`)
	})

	err := runCommand(t, app, "kyc-approve", "-id", "u1")
	require.Error(t, err)
	assert.Equal(t, "KYC is already rejected", err.Error())

	err = runCommand(t, app, "kyc-approve", "-id", "u9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no record with id "u9"`)

	assert.Zero(t, verifies.Load())
}
