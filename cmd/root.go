package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/openwindows/internal/output"
	"github.com/mj1618/openwindows/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "openwindows",
	Short: "List visible application windows",
	Long: `List the normal, visible application windows currently known to the window server,
with the owning process ID, application name and window title of each.

Examples:
  openwindows
  openwindows --format debug
  openwindows --app Safari`,
	Args:          cobra.NoArgs,
	RunE:          runList,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", string(output.FormatHuman), "Output format: human, debug")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		if err := setupLogging(cmd, level); err != nil {
			return err
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		return nil
	}
}

func setupLogging(cmd *cobra.Command, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})
	logrus.SetLevel(lvl)
	return nil
}
