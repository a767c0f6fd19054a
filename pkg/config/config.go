// Package config loads scaffgen's CLI configuration. Layering, lowest to
// highest precedence: built-in defaults, the XDG config file, then a
// .scaffgen.toml / scaffgen.toml in the working directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/scaffgen/pkg/errors"
)

// Config holds the CLI-level settings. Vars are default variable bindings
// merged under explicit --vars files and --var flags.
type Config struct {
	BaseDir      string         `koanf:"base_dir"`
	TemplatesDir string         `koanf:"templates_dir"`
	Vars         map[string]any `koanf:"vars"`
}

var defaults = map[string]interface{}{
	"base_dir":      "",
	"templates_dir": "",
}

// Load builds the configuration for a run rooted at workDir.
func Load(workDir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	xdgPath := filepath.Join(xdg.ConfigHome, "scaffgen", "scaffgen.toml")
	if _, err := os.Stat(xdgPath); err == nil {
		if err := k.Load(file.Provider(xdgPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", xdgPath)
		}
	}

	// Try both .scaffgen.toml and scaffgen.toml
	for _, filename := range []string{".scaffgen.toml", "scaffgen.toml"} {
		path := filepath.Join(workDir, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
			}
			break
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	return &cfg, nil
}
