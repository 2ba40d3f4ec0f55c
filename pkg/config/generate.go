package config

import (
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/ledctl/pkg/errors"
	"github.com/arthur-debert/ledctl/pkg/format"
)

// Output syntaxes accepted by Marshal.
const (
	SyntaxTOML = "toml"
	SyntaxYAML = "yaml"
)

// fileView is Config as it is written to disk, durations as strings.
type fileView struct {
	Wait        string         `toml:"wait" yaml:"wait"`
	DialTimeout string         `toml:"dial_timeout" yaml:"dial_timeout"`
	Server      Server         `toml:"server" yaml:"server"`
	Format      format.Formats `toml:"format" yaml:"format"`
}

// Marshal encodes cfg in the given syntax. The output loads back through
// Load to the same values.
func Marshal(cfg *Config, syntax string) ([]byte, error) {
	view := fileView{
		Wait:        cfg.Wait.String(),
		DialTimeout: cfg.DialTimeout.String(),
		Server:      cfg.Server,
		Format:      cfg.Format,
	}

	var (
		out []byte
		err error
	)
	switch syntax {
	case SyntaxTOML:
		out, err = toml.Marshal(view)
	case SyntaxYAML:
		out, err = yaml.Marshal(view)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported config syntax: %s", syntax)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}

// GenerateConfigContent returns the defaults file with every value commented
// out, ready to be edited.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// WriteDefault writes GenerateConfigContent to path, creating parent
// directories. An existing file is never overwritten.
func WriteDefault(fs afero.Fs, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to check %s", path)
	}
	if exists {
		return errors.Newf(errors.ErrConfigWrite, "config file already exists: %s", path).
			WithDetail("path", path)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to create directory for %s", path)
	}
	if err := afero.WriteFile(fs, path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", path)
	}
	return nil
}

// commentOutConfigValues comments out every assignment line, keeping blank
// lines, comments and section headers.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
