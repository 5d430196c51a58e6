// Package cli implements the unigov command line: one subcommand per page of
// the student-government portal, all going through the authenticated API
// client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/apiclient"
	"github.com/noah-isme/unigov-client/internal/service"
	"github.com/noah-isme/unigov-client/pkg/config"
	"github.com/noah-isme/unigov-client/pkg/session"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ErrUsage marks command-line mistakes; main exits with status 2 on it.
var ErrUsage = errors.New("usage error")

// App wires configuration, session storage and the API client behind the
// subcommands.
type App struct {
	cfg      *config.Config
	store    session.Storage
	logger   *zap.Logger
	stdout   io.Writer
	stderr   io.Writer
	validate *validator.Validate
	metrics  *service.MetricsService

	format string
	client *apiclient.Client
}

// New constructs the application. store holds the persisted session record.
func New(cfg *config.Config, store session.Storage, logger *zap.Logger, stdout, stderr io.Writer) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		stdout:   stdout,
		stderr:   stderr,
		validate: service.NewValidator(),
		metrics:  service.NewMetricsService(),
		format:   FormatTable,
	}
}

// Run executes the command line in args against the configured API.
func (a *App) Run(ctx context.Context, args []string) error {
	var (
		apiURL      string
		timeout     time.Duration
		showMetrics bool
	)
	root := &cobra.Command{
		Use:           "unigov",
		Short:         "Command line for the UniGov student-government portal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch a.format {
			case FormatTable, FormatJSON:
			default:
				return fmt.Errorf("%w: unknown output format %q", ErrUsage, a.format)
			}
			a.client = a.newClient(apiURL, timeout)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(a.stderr, cmd.UsageString())
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
			}
			return ErrUsage
		},
	}
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s: %v", ErrUsage, cmd.CommandPath(), err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&apiURL, "api-url", "", "API base URL (overrides UNIGOV_API_URL)")
	flags.StringVarP(&a.format, "output", "o", FormatTable, "output format: table or json")
	flags.DurationVar(&timeout, "timeout", 0, "HTTP timeout (defaults to HTTP_TIMEOUT)")
	flags.BoolVar(&showMetrics, "metrics", false, "print client call metrics to stderr on exit")

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.sessionCommand(),
		a.whoamiCommand(),
		a.profileCommand(),
		a.eventsCommand(),
		a.announcementsCommand(),
		a.complaintsCommand(),
		a.pollsCommand(),
		a.messagesCommand(),
		a.decisionsCommand(),
		a.dashboardCommand(),
		a.proceduresCommand(),
	)

	err := root.ExecuteContext(ctx)
	if showMetrics {
		a.printMetrics()
	}
	return err
}

func (a *App) newClient(apiURL string, timeout time.Duration) *apiclient.Client {
	baseURL := a.cfg.API.BaseURL
	if strings.TrimSpace(apiURL) != "" {
		baseURL = config.ResolveBaseURL(apiURL, a.cfg.IsProduction())
	}
	if timeout <= 0 {
		timeout = a.cfg.API.Timeout
	}
	a.logger.Debug("api client configured", zap.String("base_url", baseURL), zap.Duration("timeout", timeout))
	return apiclient.New(baseURL, a.store,
		apiclient.WithTimeout(timeout),
		apiclient.WithLogger(a.logger),
		apiclient.WithObserver(a.metrics),
	)
}

func (a *App) printMetrics() {
	families, err := a.metrics.Registry().Gather()
	if err != nil {
		a.logger.Warn("failed to gather metrics", zap.Error(err))
		return
	}
	fmt.Fprintf(a.stderr, "api calls: %d\n", a.metrics.Snapshot().ClientCalls)
	for _, mf := range families {
		if mf.GetName() != "unigov_client_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			fmt.Fprintf(a.stderr, "  %s %v\n", strings.Join(labels, " "), m.GetCounter().GetValue())
		}
	}
}

type runFunc func(ctx context.Context, args []string) error

// leaf wraps run as a subcommand taking the positional arguments accepted by
// args. Argument mistakes are reported as ErrUsage.
func leaf(use, short string, args cobra.PositionalArgs, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, in []string) error {
			if err := args(cmd, in); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrUsage, cmd.CommandPath(), err)
			}
			for _, arg := range in {
				if strings.TrimSpace(arg) == "" {
					return fmt.Errorf("%w: %s: empty argument", ErrUsage, cmd.CommandPath())
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, in []string) error {
			return run(cmd.Context(), in)
		},
	}
}

// group returns a parent command that runs fallback when invoked without a
// subcommand.
func group(use, short string, fallback runFunc, subs ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return fmt.Errorf("%w: %s: unknown subcommand %q", ErrUsage, cmd.CommandPath(), args[0])
			}
			return fallback(cmd.Context(), nil)
		},
	}
	cmd.AddCommand(subs...)
	return cmd
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s: invalid id %q", ErrUsage, name, raw)
	}
	return id, nil
}
