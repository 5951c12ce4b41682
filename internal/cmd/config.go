package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var generateConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the default configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		configDir, err := os.UserConfigDir()
		if err != nil {
			logrus.Fatalf("cannot resolve config directory: %v", err)
		}
		path := filepath.Join(configDir, "baro", "baro.yaml")

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			fmt.Printf("%s already exists, use --force to overwrite\n", path)
			return
		}

		defaults := map[string]any{
			"player": "spotify",
			"mounts": []string{"/", "/home", "/srv"},
			"volume": map[string]any{"enabled": false},
			"log":    map[string]any{"level": "warning"},
		}
		data, err := yaml.Marshal(defaults)
		if err != nil {
			logrus.Fatalf("marshal defaults: %v", err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			logrus.Fatalf("create config directory: %v", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			logrus.Fatalf("write config: %v", err)
		}
		fmt.Println("Wrote", path)
	},
}

func init() {
	generateConfigCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
