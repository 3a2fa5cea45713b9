package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"mutant-admin/config"
	"mutant-admin/internal/client"
	"mutant-admin/internal/dashboard"
	logs "mutant-admin/internal/infra/log"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - login, logout, whoami:               session handling
// - kyc, kyc-approve, kyc-reject, kyc-delete: KYC review
// - refunds, refund-approve, refund-reject:  refund review
// - missions, publish, unpublish:             mission publication
// - history:                                  recorded moderation decisions

type command struct {
	name    string
	summary string
	flags   *flag.FlagSet
	common  *commonFlags
	run     func(ctx context.Context, app *app) error
}

type commonFlags struct {
	gateway *string
	storage *string
}

func addCommonFlags(fs *flag.FlagSet, cfg *config.Config) *commonFlags {
	gateway := os.Getenv("ADMINCTL_GATEWAY")
	if gateway == "" {
		gateway = "http://localhost:" + strconv.Itoa(cfg.HTTP.Port)
	}

	storagePath, err := client.DefaultStoragePath()
	if err != nil {
		storagePath = ".adminctl.json"
	}

	return &commonFlags{
		gateway: fs.String("gateway", gateway, "Admin gateway base URL (env ADMINCTL_GATEWAY)"),
		storage: fs.String("storage", storagePath, "File holding the signed-in identity"),
	}
}

// app is what every subcommand works with.
type app struct {
	cfg     *config.Config
	client  *client.Client
	auth    *dashboard.AuthContext
	options dashboard.BoardOptions
	logger  *slog.Logger
	out     io.Writer
}

func main() {
	cfg := loadConfig()

	commands := newCommands(cfg)
	if len(os.Args) < 2 {
		printUsage(commands)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runSubcommand(ctx, cfg, commands); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the gateway config when present; adminctl also works without one.
func loadConfig() *config.Config {
	cfg, err := config.New()
	if err != nil {
		cfg = &config.Config{}
		cfg.HTTP.Port = 8080
		cfg.ApplyDefaults()
	}

	return cfg
}

func runSubcommand(ctx context.Context, cfg *config.Config, commands []*command) error {
	name := os.Args[1]
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}

		if err := cmd.flags.Parse(os.Args[2:]); err != nil {
			return errors.Wrapf(err, "failed to parse %s flags", name)
		}

		application, err := newApp(cfg, cmd.common)
		if err != nil {
			return err
		}

		return cmd.run(ctx, application)
	}

	printUsage(commands)

	return errors.Errorf("unknown subcommand %q", name)
}

func newApp(cfg *config.Config, common *commonFlags) (*app, error) {
	logger, err := logs.NewWithWriter(cfg.Env.Log, os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	navigator := client.NavigatorFunc(func(route string) {
		if route == client.LoginRoute {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'adminctl login' to sign in again.")
		}
	})

	c := client.New(*common.gateway, client.NewFileStorage(*common.storage),
		client.WithNavigator(navigator),
		client.WithLogger(logger),
		client.WithTimeout(cfg.Backend.Timeout),
	)
	auth := dashboard.NewAuthContext(c, logger)
	auth.Mount("/admin")

	return &app{
		cfg:    cfg,
		client: c,
		auth:   auth,
		options: dashboard.BoardOptions{
			Scheduler: dashboard.SystemScheduler(),
			Timings:   dashboard.TimingsFromConfig(cfg.Moderation),
			AdminID:   auth.AdminID,
			Logger:    logger,
		},
		logger: logger,
		out:    os.Stdout,
	}, nil
}

func printUsage(commands []*command) {
	fmt.Println("Usage: adminctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	for _, cmd := range commands {
		fmt.Printf("  %-16s%s\n", cmd.name, cmd.summary)
	}
	fmt.Println("")
	fmt.Println("Use 'adminctl <command> -h' for more information about a command.")
}
