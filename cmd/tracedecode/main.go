// Command tracedecode decodes the structured arguments of traced calls
// described by a YAML scenario.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/tracedecode/decode"
	"github.com/wippyai/tracedecode/fixture"
)

var rootCmd = &cobra.Command{
	Use:   "tracedecode",
	Short: "Render the structured arguments of traced calls.",
	Long: `Decode ioctl and netlink arguments the way strace prints them.
	Calls and the memory they point into come from a YAML scenario; the
	memory can also be a live process or a WebAssembly guest.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		return setupLogging(level)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "enable development logging at this level (debug, info, warn, error)")
}

// setupLogging installs a development logger for the decoder packages.
// An empty level keeps them silent.
func setupLogging(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	decode.SetLogger(logger)
	fixture.SetLogger(logger.Named("fixture"))
	return nil
}
