package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aguspesce/aspect/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("aspect", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
aspect - fluid-pressure boundary models for melt-transport simulations.

Usage:
  aspect [options] [PARAMS_PATH]

Arguments:
  PARAMS_PATH
    Path to an .hcl parameter file.

Options:
`)
		flagSet.PrintDefaults()
	}

	paramsFlag := flagSet.String("params", "", "Path to the parameter file.")
	pFlag := flagSet.String("p", "", "Path to the parameter file (shorthand).")
	describeFlag := flagSet.Bool("describe", false, "Print the generated parameter documentation and exit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *paramsFlag != "" {
		path = *paramsFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Parameter path determined.", "path", path)

	if path == "" && !*describeFlag {
		slog.Debug("No parameter path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log format: %s", logFormat)}
	}

	cfg := &app.Config{
		ParamsPath: path,
		Describe:   *describeFlag,
		LogFormat:  logFormat,
		LogLevel:   strings.ToLower(*logLevelFlag),
	}
	return cfg, false, nil
}
