package config

import (
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"

	"github.com/arthur-debert/ledctl/pkg/errors"
	"github.com/arthur-debert/ledctl/pkg/logging"
)

// LoadOptions controls where Load reads from.
type LoadOptions struct {
	// Fs holds the user configuration file. Defaults to the OS filesystem.
	Fs afero.Fs
	// Path names the user configuration file explicitly. When empty the
	// file is looked up in ConfigDir and may be absent.
	Path string
	// Overrides are applied last, keyed by the Key* constants.
	Overrides map[string]interface{}
}

// Load merges every configuration layer and decodes the result.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.Load")

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User file
	path := opts.Path
	if path == "" {
		path = FindUserConfig(fs)
	} else if ok, _ := afero.Exists(fs, path); !ok {
		return nil, errors.Newf(errors.ErrConfigLoad, "config file not found: %s", path).
			WithDetail("path", path)
	}
	if path != "" {
		if err := loadFile(k, fs, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}

	logger.Trace().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Dur("wait", cfg.Wait).
		Msg("Configuration loaded")

	return &cfg, nil
}

func loadFile(k *koanf.Koanf, fs afero.Fs, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return errors.Newf(errors.ErrConfigParse, "unsupported config format: %s", path).
			WithDetail("path", path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps LEDCTL_SERVER_HOST to server.host and LEDCTL_DIAL_TIMEOUT to
// dial_timeout: only the section separator becomes a dot.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"server_", "format_"} {
		if strings.HasPrefix(key, section) {
			return strings.Replace(key, "_", ".", 1)
		}
	}
	return key
}

func postProcess(cfg *Config) error {
	cfg.Format = cfg.Format.WithDefaults()
	if cfg.Wait < 0 {
		return errors.Newf(errors.ErrInvalidInput, "wait must not be negative: %s", cfg.Wait)
	}
	if cfg.DialTimeout < 0 {
		return errors.Newf(errors.ErrInvalidInput, "dial_timeout must not be negative: %s", cfg.DialTimeout)
	}
	return nil
}
