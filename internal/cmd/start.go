package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/hoppxi/baro/internal/bar"
	"github.com/hoppxi/baro/internal/invalidate"
	"github.com/hoppxi/baro/internal/manager"
	"github.com/hoppxi/baro/internal/mpris"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Render the status line on stdout",
	Run: func(cmd *cobra.Command, args []string) {
		conf := manager.Config.Load()

		// Without the bus there is no media state and no way to get
		// it back, so bail out instead of rendering a dead bar.
		conn, err := dbus.ConnectSessionBus()
		if err != nil {
			logrus.Fatalf("failed to connect to session bus: %v", err)
		}
		defer conn.Close()

		inv := invalidate.New()

		watcher := mpris.NewWatcher(conn, conf.GetString("player"), inv)
		defer watcher.Close()

		manager.Config.Watch(inv.Notify)

		go bar.ReadClicks(os.Stdin, watcher)

		b := bar.New(os.Stdout, watcher, inv, bar.Options{
			Mounts: conf.GetStringSlice("mounts"),
			Volume: conf.GetBool("volume.enabled"),
		})

		stop := make(chan struct{})
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigChan
			close(stop)
			inv.Notify()
		}()

		if err := b.Run(stop); err != nil {
			logrus.Fatalf("render loop failed: %v", err)
		}
	},
}
