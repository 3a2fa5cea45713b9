package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"mutant-admin/config"
	"mutant-admin/internal/client"
	"mutant-admin/internal/dashboard"
	"mutant-admin/internal/domain/entity"

	"github.com/pkg/errors"
)

func newCommands(cfg *config.Config) []*command {
	var commands []*command
	add := func(name, summary string, setup func(fs *flag.FlagSet) func(ctx context.Context, app *app) error) {
		fs := flag.NewFlagSet(name, flag.ExitOnError)
		cmd := &command{name: name, summary: summary, flags: fs}
		cmd.run = setup(fs)
		cmd.common = addCommonFlags(fs, cfg)
		commands = append(commands, cmd)
	}

	add("login", "Sign in and store the session token", func(fs *flag.FlagSet) func(context.Context, *app) error {
		email := fs.String("email", "", "Admin email")
		password := fs.String("password", "", "Admin password (env ADMINCTL_PASSWORD)")

		return func(ctx context.Context, app *app) error {
			return runLogin(ctx, app, *email, *password)
		}
	})
	add("logout", "End the session and clear stored identity", func(*flag.FlagSet) func(context.Context, *app) error {
		return runLogout
	})
	add("whoami", "Show the signed-in admin", func(*flag.FlagSet) func(context.Context, *app) error {
		return runWhoami
	})

	add("kyc", "List KYC records", func(fs *flag.FlagSet) func(context.Context, *app) error {
		list := addListFlags(fs)

		return func(ctx context.Context, app *app) error {
			board := kycBoard(app)
			if err := list.load(ctx, board); err != nil {
				return err
			}
			renderKYC(app.out, board)

			return nil
		}
	})
	add("kyc-approve", "Approve a pending KYC record", func(fs *flag.FlagSet) func(context.Context, *app) error {
		id := fs.String("id", "", "Owning user id of the KYC record")
		reason := fs.String("reason", "", "Optional note")

		return func(ctx context.Context, app *app) error {
			if err := required("id", *id); err != nil {
				return err
			}
			board := kycBoard(app)
			if err := locate(ctx, board, *id); err != nil {
				return err
			}

			return settleAndRender(app, board, board.Approve(ctx, *id, *reason), renderKYC)
		}
	})
	add("kyc-reject", "Reject a pending KYC record", func(fs *flag.FlagSet) func(context.Context, *app) error {
		id := fs.String("id", "", "Owning user id of the KYC record")
		reason := fs.String("reason", "", "Rejection reason (required)")

		return func(ctx context.Context, app *app) error {
			if err := required("id", *id); err != nil {
				return err
			}
			board := kycBoard(app)
			if err := locate(ctx, board, *id); err != nil {
				return err
			}

			return settleAndRender(app, board, board.Reject(ctx, *id, flagPrompt(*reason)), renderKYC)
		}
	})
	add("kyc-delete", "Delete a KYC record", func(fs *flag.FlagSet) func(context.Context, *app) error {
		id := fs.String("id", "", "Owning user id of the KYC record")
		yes := fs.Bool("yes", false, "Confirm the deletion")

		return func(ctx context.Context, app *app) error {
			if err := required("id", *id); err != nil {
				return err
			}
			board := kycBoard(app)

			return settleAndRender(app, board, board.Delete(ctx, *id, *yes), renderKYC)
		}
	})

	add("refunds", "List refund requests", func(fs *flag.FlagSet) func(context.Context, *app) error {
		list := addListFlags(fs)

		return func(ctx context.Context, app *app) error {
			board := refundBoard(app)
			if err := list.load(ctx, board); err != nil {
				return err
			}
			renderRefunds(app.out, board)

			return nil
		}
	})
	add("refund-approve", "Approve a pending refund", func(fs *flag.FlagSet) func(context.Context, *app) error {
		id := fs.String("id", "", "Refund id")
		reason := fs.String("reason", "", "Optional note")

		return func(ctx context.Context, app *app) error {
			if err := required("id", *id); err != nil {
				return err
			}
			board := refundBoard(app)
			if err := locate(ctx, board, *id); err != nil {
				return err
			}

			return settleAndRender(app, board, board.Approve(ctx, *id, *reason), renderRefunds)
		}
	})
	add("refund-reject", "Reject a pending refund", func(fs *flag.FlagSet) func(context.Context, *app) error {
		id := fs.String("id", "", "Refund id")
		reason := fs.String("reason", "", "Rejection reason (required)")

		return func(ctx context.Context, app *app) error {
			if err := required("id", *id); err != nil {
				return err
			}
			board := refundBoard(app)
			if err := locate(ctx, board, *id); err != nil {
				return err
			}

			return settleAndRender(app, board, board.Reject(ctx, *id, flagPrompt(*reason)), renderRefunds)
		}
	})

	add("missions", "List missions", func(fs *flag.FlagSet) func(context.Context, *app) error {
		page := fs.Int("page", 1, "Page number")

		return func(ctx context.Context, app *app) error {
			board := dashboard.NewMissionBoard(dashboard.NewMissionSource(app.client), app.options)
			if err := board.SetPage(ctx, *page); err != nil {
				return err
			}
			renderMissions(app.out, board)

			return nil
		}
	})
	add("publish", "Publish a mission", func(fs *flag.FlagSet) func(context.Context, *app) error {
		id := fs.String("id", "", "Mission id")

		return func(ctx context.Context, app *app) error {
			return runSetPublished(ctx, app, *id, true)
		}
	})
	add("unpublish", "Unpublish a mission", func(fs *flag.FlagSet) func(context.Context, *app) error {
		id := fs.String("id", "", "Mission id")

		return func(ctx context.Context, app *app) error {
			return runSetPublished(ctx, app, *id, false)
		}
	})

	add("history", "Show recorded moderation decisions", func(fs *flag.FlagSet) func(context.Context, *app) error {
		resource := fs.String("resource", "", "kyc, refund or mission")
		id := fs.String("id", "", "Resource id")
		limit := fs.Int("limit", 20, "Maximum number of decisions")

		return func(ctx context.Context, app *app) error {
			decisions, err := app.client.History(ctx, entity.ResourceKind(*resource), *id, *limit)
			if err != nil {
				return err
			}
			renderHistory(app.out, decisions)

			return nil
		}
	})

	return commands
}

type listFlags struct {
	status *string
	page   *int
	limit  *int
}

func addListFlags(fs *flag.FlagSet) *listFlags {
	return &listFlags{
		status: fs.String("status", "all", "Status filter: all, pending, approved, rejected"),
		page:   fs.Int("page", 1, "Page number"),
		limit:  fs.Int("limit", 10, "Page size"),
	}
}

type queryBoard interface {
	SetQuery(ctx context.Context, query entity.ListQuery) error
}

func (f *listFlags) load(ctx context.Context, board queryBoard) error {
	filter, ok := entity.ParseStatusFilter(*f.status)
	if !ok {
		return errors.Errorf("invalid -status %q", *f.status)
	}

	return board.SetQuery(ctx, entity.ListQuery{Status: filter, Page: *f.page, Limit: *f.limit})
}

func kycBoard(app *app) *dashboard.ModerationBoard[entity.KYCRecord] {
	return dashboard.NewModerationBoard[entity.KYCRecord](dashboard.NewKYCSource(app.client), app.options)
}

func refundBoard(app *app) *dashboard.ModerationBoard[entity.Refund] {
	return dashboard.NewModerationBoard[entity.Refund](dashboard.NewRefundSource(app.client), app.options)
}

// settleAndRender reports the action outcome, waits for the scheduled
// refetch and prints the refreshed list.
func settleAndRender[T entity.Moderated](
	app *app,
	board *dashboard.ModerationBoard[T],
	err error,
	render func(out io.Writer, board *dashboard.ModerationBoard[T]),
) error {
	if errors.Is(err, dashboard.ErrCancelled) {
		fmt.Fprintln(os.Stderr, "Cancelled: nothing was sent.")

		return nil
	}
	if err != nil {
		if notice := board.View().Notice; notice != nil && notice.Kind == dashboard.NoticeError {
			return errors.New(notice.Message)
		}

		return errors.New(client.ErrorMessage(err))
	}

	printNotice(app.out, board.View().Notice)
	board.Settle()
	render(app.out, board)

	return nil
}

// locate loads the page holding id so the board can check its status.
func locate[T entity.Moderated](ctx context.Context, board *dashboard.ModerationBoard[T], id string) error {
	_, found, err := board.Find(ctx, id)
	if err != nil {
		return errors.New(client.ErrorMessage(err))
	}
	if !found {
		return errors.Errorf("no record with id %q", id)
	}

	return nil
}

func flagPrompt(value string) dashboard.Prompt {
	return func() (string, bool) {
		return value, strings.TrimSpace(value) != ""
	}
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.Errorf("-%s is required", name)
	}

	return nil
}

func runLogin(ctx context.Context, app *app, email, password string) error {
	if password == "" {
		password = os.Getenv("ADMINCTL_PASSWORD")
	}
	if err := required("email", email); err != nil {
		return err
	}
	if err := required("password", password); err != nil {
		return err
	}

	if err := app.auth.Login(ctx, email, password); err != nil {
		return errors.New(client.ErrorMessage(err))
	}

	fmt.Fprintf(app.out, "Signed in as %s\n", app.auth.User().DisplayName())

	return nil
}

func runLogout(ctx context.Context, app *app) error {
	app.auth.Logout(ctx)
	fmt.Fprintln(app.out, "Logged out")

	return nil
}

func runWhoami(ctx context.Context, app *app) error {
	if !app.auth.IsAuthenticated() {
		return errors.New("not signed in")
	}

	info, err := app.client.Session(ctx)
	if err != nil {
		return errors.New(client.ErrorMessage(err))
	}
	renderSession(app.out, info)

	return nil
}

func runSetPublished(ctx context.Context, app *app, id string, published bool) error {
	if err := required("id", id); err != nil {
		return err
	}

	board := dashboard.NewMissionBoard(dashboard.NewMissionSource(app.client), app.options)
	if err := board.Load(ctx); err != nil {
		return err
	}
	if err := board.SetPublished(ctx, id, published); err != nil {
		return errors.New(client.ErrorMessage(err))
	}

	printNotice(app.out, board.View().Notice)
	renderMissions(app.out, board)

	return nil
}
