package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/highlow/internal/config"
	"github.com/arcanaland/highlow/internal/logger"
	"github.com/arcanaland/highlow/internal/render"
)

// cfg is loaded before any subcommand runs.
var cfg *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "highlow",
	Short: "Play higher-or-lower against the dealer",
	Long: `Highlow is a terminal card game. A shuffled 52-card deck shows one card;
guess whether the next card ranks higher or lower. Five counted rounds make a game.

Black aces are high (14) and red aces are low (1). When two cards share a
value the black card ranks above the red one; same value and same colour is
a draw and the round is replayed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		cfg = loaded

		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = cfg.LogLevel
		}
		if err := logger.Init(level); err != nil {
			return err
		}

		noColor, _ := cmd.Flags().GetBool("no-color")
		render.SetColor(cfg.Color && !noColor && term.IsTerminal(int(os.Stdout.Fd())))

		logger.Debugf("config loaded from %s", config.GetConfigFilePath())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from config)")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
