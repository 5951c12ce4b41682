package cmd

import (
	"fmt"
	"os"

	"github.com/hoppxi/baro/internal/manager"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "baro",
	Version: Version,
	Short:   "baro generates a swaybar/i3bar status line",
	Long:    "baro renders media player, disk, memory and clock blocks for an i3bar-compatible bar and reacts to clicks on them",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// stdout belongs to the wire protocol, diagnostics go to stderr
		logrus.SetOutput(os.Stderr)

		level, err := logrus.ParseLevel(manager.Config.Load().GetString("log.level"))
		if err != nil {
			level = logrus.WarnLevel
		}
		logrus.SetLevel(level)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(mediaCmd)
	rootCmd.AddCommand(generateConfigCmd)
}
