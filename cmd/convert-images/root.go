package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pixpress/internal/config"
	"pixpress/internal/convert"
	"pixpress/internal/deps"
	"pixpress/internal/encoder"
	"pixpress/internal/ledger"
	"pixpress/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var dirFlag string
	var strictFlag bool
	var historyFlag int
	var initConfigFlag bool

	cmd := &cobra.Command{
		Use:           "convert-images",
		Short:         "Produce WebP and AVIF derivatives of every PNG and JPG in a directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initConfigFlag {
				return runInitConfig(cmd, configFlag)
			}

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

			if cmd.Flags().Changed("history") {
				return runHistory(cmd, cfg, historyFlag)
			}

			return runBatch(cmd, cfg, logger, dirFlag, strictFlag)
		},
	}

	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "configuration file path")
	cmd.Flags().StringVar(&logLevelFlag, "log-level", "", "override the configured log level")
	cmd.Flags().StringVarP(&dirFlag, "dir", "d", ".", "directory to convert")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "exit nonzero when any file fails to convert")
	cmd.Flags().IntVar(&historyFlag, "history", 10, "show the most recent batch runs instead of converting")
	cmd.Flags().BoolVar(&initConfigFlag, "init-config", false, "write a sample configuration file and exit")

	return cmd
}

func runInitConfig(cmd *cobra.Command, configPath string) error {
	path := configPath
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}
	if err := config.CreateSample(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
	return nil
}

func runHistory(cmd *cobra.Command, cfg *config.Config, limit int) error {
	store, err := ledger.Open(cfg.LedgerPath())
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded batch runs.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderHistoryTable(runs))
	return nil
}

func runBatch(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, dir string, strict bool) error {
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	for _, status := range deps.Check(deps.Requirements(cfg)) {
		if !status.Available {
			logger.Warn("encoder unavailable", "name", status.Name, "detail", status.Detail)
		}
	}

	lock, err := convert.AcquireLock(cfg.LockPath())
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	client := encoder.NewCLI(
		encoder.WithWebPBinary(cfg.WebP.Binary),
		encoder.WithWebPQuality(cfg.WebP.Quality),
		encoder.WithAVIFBinary(cfg.AVIF.Binary),
		encoder.WithAVIFSpeed(cfg.AVIF.Speed),
	)
	converter := convert.New(client, logger)

	result, err := converter.Batch(cmd.Context(), dir)
	if err != nil {
		return err
	}

	if cfg.Ledger.Enabled {
		if err := recordRun(cmd, cfg, result); err != nil {
			// History is best-effort; the conversions already happened.
			logger.Warn("failed to record batch run", "error", err)
		}
	}

	out := cmd.OutOrStdout()
	if len(result.Outcomes) == 0 {
		fmt.Fprintln(out, "No PNG or JPG files found.")
		return nil
	}

	printOutcomes(out, result.Outcomes)
	fmt.Fprintln(out, renderSummaryTable(result))

	if failed := result.Failed(); failed > 0 && (strict || cfg.Batch.Strict) {
		return fmt.Errorf("%d of %d conversions failed", failed, len(result.Outcomes))
	}
	return nil
}

func recordRun(cmd *cobra.Command, cfg *config.Config, result *convert.Result) error {
	store, err := ledger.Open(cfg.LedgerPath())
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(cmd.Context(), result)
}
