package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/plantgo/internal/app"
	"github.com/specialistvlad/plantgo/internal/config"
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
// styled tells whether the report goes to a terminal.
func Parse(args []string, output io.Writer, styled bool) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("plantinfo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
plantinfo - Loads robot model descriptions and reports the resulting plant.

Usage:
  plantinfo [options] PATH

Arguments:
  PATH
    A description file (.hcl, .yaml, .yml) or a directory searched recursively.

Options:
`)
		flagSet.PrintDefaults()
	}

	var paths []app.PathAlias
	configFlag := flagSet.String("config", "", "Path to a TOML configuration file.")
	nameFlag := flagSet.String("name", "", "Model instance name overriding the model's own name (single model file only).")
	worldFlag := flagSet.Bool("world", false, "Treat every file as a world file listing sibling models.")
	depthFlag := flagSet.Int("max-include-depth", 0, "Maximum include nesting depth (default 32).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.Func("path", "Package path alias `scheme://=dir`; may be repeated.", func(s string) error {
		alias, err := app.ParsePathAlias(s)
		if err != nil {
			return err
		}
		paths = append(paths, alias)
		return nil
	})

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No model path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected a single PATH argument"}
	}

	fileCfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		fileCfg = loaded
		slog.Debug("Configuration file loaded.", "path", *configFlag)
	}

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	logFormat := fileCfg.Logging.Format
	if set["log-format"] {
		logFormat = strings.ToLower(*logFormatFlag)
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := fileCfg.Logging.Level
	if set["log-level"] {
		logLevel = strings.ToLower(*logLevelFlag)
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	depth := fileCfg.Resolver.MaxIncludeDepth
	if set["max-include-depth"] {
		depth = *depthFlag
	}

	// Flag paths are searched before the file's.
	for _, scheme := range fileCfg.Schemes() {
		for _, dir := range fileCfg.Resolver.Paths[scheme] {
			paths = append(paths, app.PathAlias{Scheme: scheme, Dir: dir})
		}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ModelPath:       flagSet.Arg(0),
		InstanceName:    *nameFlag,
		World:           *worldFlag,
		Paths:           paths,
		MaxIncludeDepth: depth,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		Styled:          styled,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
