package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"photoorder/internal/app"
	"photoorder/internal/config"
	appErrors "photoorder/internal/errors"
	"photoorder/internal/infra/exif"
	"photoorder/internal/infra/fs"
	"photoorder/internal/logging"
	"photoorder/internal/presentation"
	"photoorder/internal/tui"
)

// errReported marks a failure whose message has already been printed.
var errReported = errors.New("reported")

func newCopyCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy photos to ordered folder with date-based renaming",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, stderr)
			if err != nil {
				return err
			}
			return runCopy(cmd.Context(), cfg, logger, stdout, stderr)
		},
	}
	cmd.Flags().StringP(config.KeyInput, "i", config.DefaultInputFile, "File listing one folder path per line")
	cmd.Flags().StringP(config.KeyOutput, "o", config.DefaultOutputDir, "Directory receiving the renamed copies")
	cmd.Flags().Bool(config.KeyTUI, false, "Show a live terminal view instead of the line report")
	return cmd
}

func runCopy(ctx context.Context, cfg config.Config, logger logging.Logger, stdout, stderr io.Writer) error {
	filesystem := fs.OSFS{
		OnWalkError: func(path string, err error) {
			logger.Warnf("Skipping unreadable entry %s: %v", path, err)
		},
	}

	folders, err := app.ReadFolderList(filesystem, cfg.InputFile)
	if err != nil {
		switch appErrors.KindOf(err) {
		case appErrors.NotFound:
			fmt.Fprintf(stderr, "⚠️  Input file '%s' not found!\n", cfg.InputFile)
			fmt.Fprintf(stderr, "Please create an '%s' file with one folder path per line.\n", cfg.InputFile)
		case appErrors.EmptyInput:
			fmt.Fprintf(stderr, "⚠️  No folder paths found in '%s'\n", cfg.InputFile)
		default:
			return err
		}
		return errReported
	}
	logger.Verbosef("Read %d folder paths from %s", len(folders), cfg.InputFile)

	copier := app.Copier{
		FS:     filesystem,
		Exif:   exif.Reader{},
		Logger: logger,
	}

	if cfg.TUI {
		return runCopyTUI(ctx, &copier, cfg, folders, stdout)
	}

	copier.Reporter = presentation.NewPrinter(stdout, cfg.Verbose)
	_, err = copier.Copy(ctx, cfg.InputFile, folders, cfg.OutputDir)
	return err
}

func runCopyTUI(ctx context.Context, copier *app.Copier, cfg config.Config, folders []string, stdout io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var program *tea.Program
	copier.Reporter = tui.Reporter{Send: func(msg tea.Msg) { program.Send(msg) }}

	var job copyJob
	model := tui.NewModel(tui.Config{
		InputFile: cfg.InputFile,
		OutputDir: cfg.OutputDir,
		StartCopy: func() tea.Cmd {
			return func() tea.Msg {
				if !job.begin() {
					return nil
				}
				defer job.end()
				report, err := copier.Copy(ctx, cfg.InputFile, folders, cfg.OutputDir)
				if err != nil {
					return tui.ErrorMsg{Err: err}
				}
				return tui.CopyDoneMsg{Report: report}
			}
		},
	})

	program = tea.NewProgram(model, tea.WithOutput(stdout), tea.WithContext(ctx))
	final, err := program.Run()
	cancel()
	job.wait()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}
	return copyOutcome(final)
}

var errCopyAborted = errors.New("copy aborted before completion")

// copyOutcome maps the final TUI model to the command result.
func copyOutcome(final tea.Model) error {
	m, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	if m.Err != nil {
		return m.Err
	}
	if m.Aborted() {
		return errCopyAborted
	}
	return nil
}

// copyJob lets the command wait for a copy started from the TUI, and keeps
// one from starting once the program has exited.
type copyJob struct {
	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func (j *copyJob) begin() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stopped {
		return false
	}
	j.wg.Add(1)
	return true
}

func (j *copyJob) end() {
	j.wg.Done()
}

func (j *copyJob) wait() {
	j.mu.Lock()
	j.stopped = true
	j.mu.Unlock()
	j.wg.Wait()
}
