// Package cli is the terminal front end: one-shot subcommands and an
// interactive shell over the search, browse and preference services.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "cardfinder/internal/errors"
	"cardfinder/internal/services"
)

// Options wires the services the commands call into
type Options struct {
	Dispatcher  services.SearchDispatcherInterface
	Browse      services.BrowseServiceInterface
	Preferences services.PreferenceServiceInterface
	Catalog     services.CatalogReader
	// Gatherer backs the shell's metrics command; nil disables it
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
	Stdin    io.Reader
	Now      func() time.Time
}

// App dispatches command lines to subcommands
type App struct {
	dispatcher  services.SearchDispatcherInterface
	browse      services.BrowseServiceInterface
	preferences services.PreferenceServiceInterface
	catalog     services.CatalogReader
	gatherer    prometheus.Gatherer
	logger      *slog.Logger
	stdin       io.Reader
	now         func() time.Time
	commands    map[string]command
}

type command struct {
	usage string
	run   func(ctx context.Context, args []string, stdout, stderr io.Writer) error
}

// New creates the application; unset Logger, Stdin and Now get process defaults
func New(opts Options) *App {
	a := &App{
		dispatcher:  opts.Dispatcher,
		browse:      opts.Browse,
		preferences: opts.Preferences,
		catalog:     opts.Catalog,
		gatherer:    opts.Gatherer,
		logger:      opts.Logger,
		stdin:       opts.Stdin,
		now:         opts.Now,
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.stdin == nil {
		a.stdin = os.Stdin
	}
	if a.now == nil {
		a.now = time.Now
	}

	a.commands = map[string]command{
		"search":  {"search [-kinds credit,debit,mobile,eticket] [-expired] <query>", a.runSearch},
		"cards":   {"cards [-bank name] [-sort bank|name] [-expired] [-banks]", a.runCards},
		"mine":    {"mine [-view all|owned|favorites] [-expired]", a.runMine},
		"own":     {"own <card-id>", a.runOwn},
		"fav":     {"fav <card-id>", a.runFavorite},
		"history": {"history [-clear]", a.runHistory},
		"rate":    {"rate <card-id> <benefit-number> [condition-id ...]", a.runRate},
		"stats":   {"stats", a.runStats},
		"shell":   {"shell", a.runShell},
	}
	return a
}

// Run executes one command line and returns the process exit code
func (a *App) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		a.printUsage(stderr)
		return 2
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage(stdout)
		return 0
	}

	cmd, ok := a.commands[name]
	if !ok {
		err := apperrors.New(apperrors.SystemUsageError, apperrors.WithDetails(fmt.Sprintf("unknown command %q", name)))
		a.reportError(stderr, err)
		a.printUsage(stderr)
		return apperrors.GetExitCode(err)
	}

	if err := a.guard(name, func() error { return cmd.run(ctx, args[1:], stdout, stderr) }); err != nil {
		a.reportError(stderr, err)
		return apperrors.GetExitCode(err)
	}
	return 0
}

// guard converts a panic inside fn into an internal error
func (a *App) guard(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Panic recovered",
				"command", name,
				"panic", fmt.Sprintf("%v", r),
				"stack_trace", string(debug.Stack()),
			)
			err = apperrors.New(apperrors.SystemInternalError)
		}
	}()
	return fn()
}

func (a *App) printUsage(w io.Writer) {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: cardfinder <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", a.commands[name].usage)
	}
}

// reportError prints coded errors as-is and hides the internals of anything else
func (a *App) reportError(w io.Writer, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		a.logger.Error("command failed", slog.String("error", err.Error()))
		appErr = apperrors.New(apperrors.SystemInternalError)
	} else if appErr.Err != nil {
		a.logger.Debug("command failed", slog.String("code", string(appErr.Code)), slog.String("error", appErr.Err.Error()))
	}

	fmt.Fprintf(w, "error [%s]: %s\n", appErr.Code, appErr.Message)
	for _, detail := range appErr.Details {
		fmt.Fprintf(w, "  - %s\n", detail)
	}
}

// newFlagSet builds a flag set whose parse errors become usage errors
func newFlagSet(name, usage string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: cardfinder %s\n", usage)
		fs.PrintDefaults()
	}
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelp
		}
		return apperrors.New(apperrors.SystemUsageError, apperrors.WithDetails(err.Error()))
	}
	return nil
}

// errHelp ends a command successfully after its usage was printed
var errHelp = errors.New("help requested")

func usageError(format string, args ...any) error {
	return apperrors.New(apperrors.SystemUsageError, apperrors.WithDetails(fmt.Sprintf(format, args...)))
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
