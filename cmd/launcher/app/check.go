package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memelaunch/launcher/internal/launcher"
	launcherLogger "github.com/memelaunch/launcher/internal/logger"
	"github.com/memelaunch/launcher/internal/summary"
	"github.com/memelaunch/launcher/internal/templates"
)

var ErrChecksFailed = errors.New("one or more templates failed the checks")

var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check templates and account keys without touching the network",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		logger, err := launcherLogger.NewLogger(cfg.LogLevel, cfg.LogFormat, launcherLogger.WithWriter(cmd.ErrOrStderr()))
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		params, err := cfg.LaunchParams()
		if err != nil {
			return err
		}

		jobs, err := templates.NewLoader(logger).Load(cfg.Launch.TemplatesPath)
		if err != nil {
			return err
		}

		checks := launcher.CheckJobs(params, jobs)
		summary.RenderChecks(cmd.OutOrStdout(), checks)

		failed := 0
		for _, c := range checks {
			if !c.Passed() {
				failed++
			}
		}

		if failed > 0 {
			return errors.Join(ErrChecksFailed, fmt.Errorf("%d of %d templates failed", failed, len(checks)))
		}

		return nil
	},
}
