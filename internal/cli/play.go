package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/guess/internal/config"
	"github.com/robalobadob/guess/internal/console"
	"github.com/robalobadob/guess/internal/game"
	"github.com/robalobadob/guess/internal/logging"
	"github.com/robalobadob/guess/internal/secret"
)

func newPlayCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one session on stdin/stdout",
		Long: `Play one guessing session.

A secret number is drawn from [low, high]. Each line read from stdin is a guess:
  - not a whole number      → rejected, try again
  - outside [low, high]     → rejected, try again
  - too small / too big     → hint, try again
  - equal                   → you win, exit 0
End of input aborts the session with exit code 1.

Secret modes:
  random  a fresh random secret (default)
  fixed   the value given by --value
  daily   the same secret for everyone on the current UTC date (--salt)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, root)
		},
	}

	cmd.Flags().Int64("low", 0, "lowest possible secret (default from config: 1)")
	cmd.Flags().Int64("high", 0, "highest possible secret (default from config: 10)")
	cmd.Flags().String("secret", "", "secret mode: random|fixed|daily")
	cmd.Flags().Int64("value", 0, "secret for --secret fixed")
	cmd.Flags().String("salt", "", "salt for --secret daily")
	return cmd
}

func runPlay(cmd *cobra.Command, root *rootOptions) error {
	cfg, err := config.Read(root.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, root, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	src, err := secret.New(cfg.Secret, cfg.Value, cfg.DailySalt)
	if err != nil {
		return err
	}
	rep := console.NewReporter(cmd.OutOrStdout())
	s, err := game.NewSession(cfg.Bounds(), src, console.NewReader(cmd.InOrStdin()), rep)
	if err != nil {
		return err
	}

	log.Debug().Str("session", s.ID()).Str("secret_mode", cfg.Secret).Msg("playing")
	rep.Banner(s.Bounds())
	res := s.Run()
	if !res.Won() {
		return fmt.Errorf("%w: %v", errAborted, res.Err)
	}
	return nil
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command, root *rootOptions, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("low") {
		if cfg.Low, err = flags.GetInt64("low"); err != nil {
			return err
		}
	}
	if flags.Changed("high") {
		if cfg.High, err = flags.GetInt64("high"); err != nil {
			return err
		}
	}
	if flags.Changed("value") {
		if cfg.Value, err = flags.GetInt64("value"); err != nil {
			return err
		}
	}
	if flags.Changed("secret") {
		if cfg.Secret, err = flags.GetString("secret"); err != nil {
			return err
		}
	}
	if flags.Changed("salt") {
		if cfg.DailySalt, err = flags.GetString("salt"); err != nil {
			return err
		}
	}
	if root.logLevel != "" {
		cfg.LogLevel = root.logLevel
	}
	if root.logFormat != "" {
		cfg.LogFormat = root.logFormat
	}
	return nil
}
