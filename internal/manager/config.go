package manager

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	once sync.Once
	v    *viper.Viper
)

type ConfigManager struct{}

var Config = &ConfigManager{}

// Load reads ~/.config/baro/baro.yaml once. A missing file is fine;
// the defaults below describe a usable bar.
func (c *ConfigManager) Load() *viper.Viper {
	once.Do(func() {
		v = viper.New()

		v.SetDefault("player", "spotify")
		v.SetDefault("mounts", []string{"/", "/home", "/srv"})
		v.SetDefault("volume.enabled", false)
		v.SetDefault("log.level", "warning")

		configDir, err := os.UserConfigDir()
		if err != nil {
			logrus.Warnf("config: cannot resolve config directory: %v", err)
			return
		}

		v.SetConfigFile(filepath.Join(configDir, "baro", "baro.yaml"))
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			logrus.Warnf("config: %v", err)
		}
	})

	return v
}

// Watch invokes onChange whenever the config file is edited.
func (c *ConfigManager) Watch(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		onChange()
	})
}
