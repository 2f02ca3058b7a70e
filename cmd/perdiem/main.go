package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/perdiem/internal/app"
	"github.com/vk/perdiem/internal/cli"
	"github.com/vk/perdiem/internal/hcl"
)

// main is the entrypoint for the perdiem application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The report goes to outW, logs to logW.
func run(outW, logW io.Writer, args []string) error {
	if err := app.LoadEnv(); err != nil {
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("failed to load .env: %v", err)}
	}

	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	perdiemApp := app.NewApp(outW, logW, appConfig, hcl.NewLoader())
	if err := perdiemApp.Run(context.Background()); err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%v\nPlease fix the above error(s) and try again.", err)}
		}
		return err
	}
	return nil
}
