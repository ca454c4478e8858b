package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dataportal-stats/internal/aggregators"
	"dataportal-stats/internal/app"
	"dataportal-stats/internal/shared/configs"
	"dataportal-stats/internal/shared/svcerrors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2

	defaultConfigPath = "./configs/configs.yml"
)

// usageError marks failures caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type options struct {
	configPath string
	year       string
	quarter    string
	noColor    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "%v\nfor help use --help\n", err)
		return exitUsage
	}
	if svcErr, ok := svcerrors.AsServiceError(err); ok && svcErr.IsInvalidArgument() {
		fmt.Fprintf(stderr, "%s\nfor help use --help\n", svcErr.Message)
		return exitUsage
	}
	fmt.Fprintf(stderr, "dataportal-stats: %v\n", err)
	return exitFatal
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "dataportal-stats",
		Short: "Monthly download usage report for the data portal",
		Long: "Merges the historical download archive with the live request log and prints\n" +
			"records and download events per month, split into collection, other and GBIF.",
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := aggregators.ParseFilterParams(opts.year, opts.quarter)
			if err != nil {
				return err
			}

			application, err := newApp(opts.configPath, stderr)
			if err != nil {
				return err
			}

			colorize := !opts.noColor && !color.NoColor
			return application.RunReport(cmd.Context(), params, stdout, colorize)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "path to the YAML config file")
	root.Flags().StringVarP(&opts.year, "year", "y", "", "only report this year (two digits are read as 20xx)")
	root.Flags().StringVarP(&opts.quarter, "quarter", "q", "", "only report this quarter (1-4), requires --year")
	root.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newServeCmd(opts, stderr))
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}

func newServeCmd(opts *options, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve reports over HTTP",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(opts.configPath, stderr)
			if err != nil {
				return err
			}

			serverErr := make(chan error, 1)
			go func() {
				if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-serverErr:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-quit:
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return application.Shutdown(ctx)
		},
	}
}

func newApp(configPath string, logOutput io.Writer) (*app.App, error) {
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(cfg, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return application, nil
}
