package main

import (
	"io"

	"github.com/spf13/cobra"

	"photoorder/internal/app"
	"photoorder/internal/config"
	"photoorder/internal/infra/fs"
	"photoorder/internal/infra/imagesize"
	"photoorder/internal/presentation"
)

func newStatsCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show orientation statistics for photos in ordered folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, stderr)
			if err != nil {
				return err
			}

			analyzer := app.Analyzer{
				FS:         fs.OSFS{},
				Dimensions: imagesize.Reader{},
				Logger:     logger,
				Reporter:   presentation.NewPrinter(stdout, cfg.Verbose),
			}
			_, err = analyzer.Analyze(cmd.Context(), cfg.StatsDir)
			return err
		},
	}
	cmd.Flags().StringP(config.KeyStatsDir, "d", config.DefaultOutputDir, "Flat directory of photos to classify")
	return cmd
}
