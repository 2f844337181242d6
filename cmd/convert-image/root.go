package main

import (
	"github.com/spf13/cobra"

	"pixpress/internal/config"
	"pixpress/internal/convert"
	"pixpress/internal/encoder"
	"pixpress/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var outputDirFlag string

	cmd := &cobra.Command{
		Use:           "convert-image <path>",
		Short:         "Produce WebP and AVIF derivatives of a single image",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if logLevelFlag != "" {
				cfg.Logging.Level = logLevelFlag
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			client := encoder.NewCLI(
				encoder.WithWebPBinary(cfg.WebP.Binary),
				encoder.WithWebPQuality(cfg.WebP.Quality),
				encoder.WithAVIFBinary(cfg.AVIF.Binary),
				encoder.WithAVIFSpeed(cfg.AVIF.Speed),
			)
			converter := convert.New(client, logger)
			return converter.File(cmd.Context(), args[0], outputDirFlag)
		},
	}

	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "configuration file path")
	cmd.Flags().StringVar(&logLevelFlag, "log-level", "", "override the configured log level")
	cmd.Flags().StringVar(&outputDirFlag, "output-dir", ".", "directory derivatives are written into")

	return cmd
}
