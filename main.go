package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/tty-pick/internal/app"
	"github.com/atomicstack/tty-pick/internal/config"
	"github.com/atomicstack/tty-pick/internal/logging"
	"github.com/atomicstack/tty-pick/internal/logging/events"
	"github.com/atomicstack/tty-pick/internal/session"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitCancelled = 130
)

// usageError marks failures that happen before any picking starts.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	code := run(ctx, os.Args[1:], os.Environ(), os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args, environ []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand(environ, stdin, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	return exitCode(err, stderr)
}

func newRootCommand(environ []string, stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tty-pick",
		Short: "Pick lines from stdin on the terminal and print the choice",
		Long: "tty-pick reads items from stdin, one per line, lets you filter them with a\n" +
			"regular expression and prints the chosen lines to stdout.\n\n" +
			"Keys: up/down or tab/shift+tab move, enter confirms, esc esc or ctrl+c\n" +
			"cancels, + and - mark and unmark in --multi mode.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unexpected arguments %q: items are read from stdin", args)}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	values := config.Register(cmd.Flags(), environ)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := values.Config(args)
		if err != nil {
			return usageError{err}
		}
		if err := config.Validate(cfg); err != nil {
			return usageError{err}
		}
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		traceStartup(cfg)
		return app.Run(cmd.Context(), cfg.App, stdin, stdout)
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	return cmd
}

func exitCode(err error, stderr io.Writer) int {
	var usage usageError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, session.ErrCancelled):
		return exitCancelled
	case errors.Is(err, session.ErrNoMatch), errors.Is(err, app.ErrNoInput):
		return exitFailure
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitUsage
	default:
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails records which standard descriptors are terminals. Items
// usually arrive on a pipe, so stdin is expected to be false.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
