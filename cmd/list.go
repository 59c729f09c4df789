package cmd

import (
	"fmt"

	"github.com/mj1618/openwindows/internal/output"
	"github.com/mj1618/openwindows/internal/platform"
	"github.com/mj1618/openwindows/internal/windows"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.Flags().Int("pid", 0, "Filter windows by PID")
	rootCmd.Flags().String("app", "", "Filter windows by app name")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Windows == nil {
		return fmt.Errorf("window source not available on this platform")
	}

	pid, _ := cmd.Flags().GetInt("pid")
	appName, _ := cmd.Flags().GetString("app")

	opts := platform.ListOptions{
		PID: pid,
		App: appName,
	}

	list := windows.NewEnumerator(provider.Windows, logrus.StandardLogger()).ListVisible(opts)

	return output.PrintWindows(cmd.OutOrStdout(), list, output.Options{
		Format: output.OutputFormat,
		Width:  output.TerminalWidth(),
	})
}
