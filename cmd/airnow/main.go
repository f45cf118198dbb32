package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-airnow-client/pkg/airnow"
	"github.com/robert-malhotra/go-airnow-client/pkg/client"
)

const version = "0.1.0"

// Exit codes.
const (
	exitOK         = 0
	exitLocation   = 1
	exitUsage      = 2
	exitCredential = 3
	exitRequest    = 4
	exitNoCommand  = 99
)

// Global flag names.
const (
	flagFormat  = "format"
	flagKey     = "key"
	flagConfig  = "config"
	flagBaseURL = "base-url"
	flagTimeout = "timeout"
	flagDebug   = "debug"
	flagPretty  = "pretty"
	flagVersion = "version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, now: time.Now}
	return a.run(ctx, args)
}

// app holds the per-process collaborators. Tests swap now and httpClient.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	now        func() time.Time
	httpClient *http.Client
}

func (a *app) run(ctx context.Context, args []string) int {
	err := a.command().Run(ctx, args)
	if err == nil {
		return exitOK
	}
	code := exitCode(err)
	if code == exitCredential {
		fmt.Fprintf(a.stderr, "Error: %v (pass --key or set AIRNOW_API_KEY)\n", err)
	} else {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}
	return code
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:        "airnow",
		Usage:       "Retrieve air quality information from AirNow",
		Version:     version,
		HideVersion: true,
		Writer:      a.stdout,
		ErrWriter:   a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagFormat,
				Aliases: []string{"f"},
				Usage:   "Output format: csv, json or xml (default: json)",
			},
			&cli.StringFlag{
				Name:    flagKey,
				Aliases: []string{"k"},
				Usage:   "AirNow API token (default: $AIRNOW_API_KEY)",
			},
			&cli.StringFlag{
				Name:  flagConfig,
				Usage: "YAML configuration file",
			},
			&cli.StringFlag{
				Name:  flagBaseURL,
				Usage: "AirNow API host",
				Value: client.DefaultBaseURL,
			},
			&cli.DurationFlag{
				Name:  flagTimeout,
				Usage: "HTTP request timeout (e.g. 30s, 1m)",
				Value: client.DefaultTimeout,
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "Log request details to stderr (also $AIRNOW_DEBUG)",
			},
			&cli.BoolFlag{
				Name:  flagPretty,
				Usage: "Pretty-print JSON responses",
			},
			&cli.BoolFlag{
				Name:    flagVersion,
				Aliases: []string{"v"},
				Usage:   "Print the version",
			},
		},
		Commands: []*cli.Command{
			a.conditionsCommand(),
			a.forecastCommand(),
			a.historicalCommand(),
			a.observationsCommand(),
		},
		Action:         a.rootAction,
		OnUsageError:   onUsageError,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func (a *app) rootAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool(flagVersion) {
		fmt.Fprintf(a.stdout, "%s version %s\n", cmd.Name, version)
		return nil
	}
	if cmd.Args().Len() > 0 {
		return cli.Exit(fmt.Sprintf("unknown command %q", cmd.Args().First()), exitUsage)
	}
	printUsage(a.stderr, cmd)
	return cli.Exit("must supply a command", exitNoCommand)
}

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return cli.Exit(err.Error(), exitUsage)
}

func printUsage(w io.Writer, cmd *cli.Command) {
	fmt.Fprintf(w, "Usage: %s [global options] <command> [options]\n\n", cmd.Name)
	fmt.Fprintf(w, "%s\n\nCommands:\n", cmd.Usage)
	for _, sub := range cmd.Commands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Usage)
	}
	fmt.Fprintf(w, "\nTo learn more about the commands and their options, see '%s <command> --help'.\n\n", cmd.Name)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var (
		coder cli.ExitCoder
		verr  *airnow.ValidationError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &coder):
		return coder.ExitCode()
	case errors.Is(err, airnow.ErrMissingLocation):
		return exitLocation
	case errors.As(err, &verr) && isLocationField(verr.Field):
		return exitLocation
	case errors.Is(err, airnow.ErrMissingCredential):
		return exitCredential
	case errors.Is(err, client.ErrRequestFailed):
		return exitRequest
	default:
		return exitUsage
	}
}

func isLocationField(field string) bool {
	switch field {
	case "ZIP code", "latitude", "longitude":
		return true
	}
	return false
}
