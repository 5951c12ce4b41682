package cmd

import (
	"github.com/hoppxi/baro/internal/manager"
	"github.com/hoppxi/baro/pkg/operation"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mediaActions = []string{"play", "pause", "play-pause", "stop", "previous", "next"}

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Control playback of the configured player",
	Run: func(cmd *cobra.Command, args []string) {
		player := manager.Config.Load().GetString("player")
		for _, action := range mediaActions {
			if set, _ := cmd.Flags().GetBool(action); set {
				if err := operation.Media.ControlMedia(player, action); err != nil {
					logrus.Errorf("media %s: %v", action, err)
				}
			}
		}
	},
}

func init() {
	mediaCmd.Flags().Bool("play", false, "Play media")
	mediaCmd.Flags().Bool("pause", false, "Pause media")
	mediaCmd.Flags().Bool("play-pause", false, "Toggle play state of media")
	mediaCmd.Flags().Bool("stop", false, "Stop media")
	mediaCmd.Flags().Bool("previous", false, "Play previous media")
	mediaCmd.Flags().Bool("next", false, "Play next media")
}
