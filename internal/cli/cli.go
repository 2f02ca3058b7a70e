package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/perdiem/internal/app"
	"github.com/vk/perdiem/internal/tripinput"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("perdiem", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
perdiem - per-diem travel reimbursement calculator.

Usage:
  perdiem [options] [--] COST START END [COST START END ...]
  perdiem [options] --trips FILE_OR_DIR [COST START END ...]

Arguments:
  COST   Cost flag: %s
  START  Start date, mm/dd/yyyy or yyyy-mm-dd.
  END    End date, mm/dd/yyyy or yyyy-mm-dd.

Options must come before the first trip.

Options:
`, strings.Join(tripinput.CostFlags(), ", "))
		flagSet.PrintDefaults()
	}

	tripsFlag := flagSet.String("trips", "", "Path to a trips .hcl file or a directory of them.")
	outputFlag := flagSet.String("output", app.EnvOr(app.EnvOutput, app.OutputText), "Report format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", app.EnvOr(app.EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.EnvOr(app.EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	options, tokens := splitArgs(flagSet, args)
	slog.Debug("Arguments split.", "options", options, "trip_tokens", len(tokens))

	if err := flagSet.Parse(options); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *tripsFlag == "" && len(tokens) == 0 {
		slog.Debug("No trips provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	offset := 0
	if len(tokens) > 0 {
		offset = len(args) - len(tokens)
	}

	config, err := app.NewConfig(app.Config{
		TripsPath:   *tripsFlag,
		Tokens:      tokens,
		TokenOffset: offset,
		Output:      strings.ToLower(*outputFlag),
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitArgs separates leading options from trip tokens. The cost flags look
// like options ("-l", "-h"), so the standard flag parser cannot see them.
// Options end at the first cost flag, at the first token that does not name
// a defined option, or at "--", which is dropped.
func splitArgs(fs *flag.FlagSet, args []string) (options, tokens []string) {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		if tripinput.IsCostFlag(arg) || !strings.HasPrefix(arg, "-") {
			break
		}

		name := strings.TrimLeft(arg, "-")
		hasValue := false
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, hasValue = name[:eq], true
		}

		if name == "help" {
			i++
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			break
		}
		i++
		if !hasValue && !isBoolFlag(f) && i < len(args) {
			i++
		}
	}
	return args[:i], args[i:]
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}
