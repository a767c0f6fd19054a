package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/scaffgen/pkg/errors"
	"github.com/arthur-debert/scaffgen/pkg/types"
)

// LoadVarsFile reads a variable-bindings file. The format follows the
// extension: .yaml/.yml, .toml or .json.
func LoadVarsFile(path string) (types.Vars, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVarsLoad, "cannot read vars file %s", path)
	}

	vars := types.Vars{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &vars)
	case ".toml":
		err = gotoml.Unmarshal(data, &vars)
	case ".json":
		err = json.Unmarshal(data, &vars)
	default:
		return nil, errors.Newf(errors.ErrVarsLoad, "unsupported vars file format: %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVarsLoad, "cannot parse vars file %s", path)
	}
	return vars, nil
}

// MergeVars overlays later maps on earlier ones; nil maps are skipped.
func MergeVars(layers ...types.Vars) types.Vars {
	merged := types.Vars{}
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}
