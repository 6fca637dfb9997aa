package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"photoorder/internal/config"
	appErrors "photoorder/internal/errors"
	"photoorder/internal/logging"
)

// errUsage marks a run that printed usage and must exit non-zero.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, errReported) {
			fmt.Fprintln(stderr, "⚠️  "+appErrors.UserMessage(err))
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cobra.EnableCaseInsensitive = true

	root := &cobra.Command{
		Use:           "photoorder <command>",
		Short:         "Copy photos into a flat folder named by capture time and report orientation stats",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprintf(stdout, "⚠️  Unknown command: %s\n", args[0])
			}
			printUsage(stdout)
			return errUsage
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			printUsage(stdout)
			return errUsage
		},
	})

	flags := root.PersistentFlags()
	flags.String(config.KeyConfig, "", "Optional config file (yaml, toml, json)")
	flags.BoolP(config.KeyVerbose, "v", false, "Verbose diagnostics on stderr")
	flags.String(config.KeyLogLevel, "warn", "Diagnostic log level (debug, info, warn, error)")

	root.AddCommand(newCopyCmd(stdout, stderr), newStatsCmd(stdout, stderr))
	return root
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  photoorder copy   - Copy photos to ordered folder with date-based renaming")
	fmt.Fprintln(w, "  photoorder stats  - Show orientation statistics for photos in ordered folder")
}

// loadConfig resolves the command's configuration and builds the
// diagnostic logger that goes with it.
func loadConfig(cmd *cobra.Command, stderr io.Writer) (config.Config, logging.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, logging.Logger{}, appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, logging.Logger{}, appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
	}
	return cfg, logging.New(stderr, level, cfg.Verbose), nil
}
