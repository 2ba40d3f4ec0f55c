package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"github.com/arthur-debert/ledctl/pkg/format"
)

// Keys accepted in flag overrides, in koanf dotted form.
const (
	KeyServerHost       = "server.host"
	KeyServerPort       = "server.port"
	KeyFormatAnimations = "format.animations"
	KeyFormatRunning    = "format.running"
	KeyFormatInfo       = "format.info"
	KeyWait             = "wait"
	KeyDialTimeout      = "dial_timeout"
)

// EnvPrefix marks the environment variables read by Load.
const EnvPrefix = "LEDCTL_"

const appName = "ledctl"

// Server is the address of the AnimatedLEDStrip server.
type Server struct {
	Host string `koanf:"host" toml:"host" yaml:"host"`
	Port int    `koanf:"port" toml:"port" yaml:"port"`
}

// Config is the fully merged client configuration.
type Config struct {
	Server      Server         `koanf:"server"`
	Format      format.Formats `koanf:"format"`
	Wait        time.Duration  `koanf:"wait"`
	DialTimeout time.Duration  `koanf:"dial_timeout"`
}

// userConfigNames lists the file names looked up in the config directory, in
// order of preference.
var userConfigNames = []string{"config.toml", "config.yaml", "config.yml"}

// ConfigDir returns the per-user configuration directory.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// DefaultPath is where `ledctl config --init` writes a new file.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), userConfigNames[0])
}

// FindUserConfig returns the first existing user configuration file, or ""
// when there is none.
func FindUserConfig(fs afero.Fs) string {
	dir := ConfigDir()
	for _, name := range userConfigNames {
		path := filepath.Join(dir, name)
		if ok, err := afero.Exists(fs, path); err == nil && ok {
			return path
		}
	}
	return ""
}
