// Package config loads a declarative line description — board densities,
// conveyor policy, and cell layout — and instantiates the runtime objects
// it describes, per spec.md §6.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"boardline/conveyor"
	"boardline/wood"
)

// outerDocument is the first decode pass, via viper's mapstructure
// unmarshal. Conveyor and Pickers are left as untyped interface{} payloads:
// their concrete shape depends on a "type" discriminator only the second
// pass resolves, the same two-stage shape as the teacher's
// reinforcement.FromYaml (OuterConfig.Def re-marshaled and re-decoded once
// its kind is known).
type outerDocument struct {
	Wood                woodDocument  `mapstructure:"wood"`
	Conveyor            interface{}   `mapstructure:"conveyor"`
	DefaultCellDistance float64       `mapstructure:"default_cell_distance"`
	DefaultCellWidth    float64       `mapstructure:"default_cell_width"`
	Pickers             []interface{} `mapstructure:"pickers"`
}

type woodDocument struct {
	FastenerDensities map[string]float64 `mapstructure:"fastener_densities"`
}

// Document is the fully-resolved configuration: every tagged union decoded,
// every auto-placement sentinel resolved to a concrete position.
type Document struct {
	Wood     wood.Parameters
	Conveyor conveyor.Params
	Pickers  []PickerSpec
}

// Load reads and decodes the YAML document at path.
func Load(path string) (*Document, error) {
	vp := viper.New()
	vp.SetConfigFile(filepath.Base(path))
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	var outer outerDocument
	if err := vp.Unmarshal(&outer); err != nil {
		return nil, err
	}

	woodParams, err := decodeWood(outer.Wood)
	if err != nil {
		return nil, err
	}

	conveyorParams, err := decodeConveyor(outer.Conveyor)
	if err != nil {
		return nil, err
	}

	pickers, err := decodePickers(outer.Pickers, outer.DefaultCellDistance, outer.DefaultCellWidth)
	if err != nil {
		return nil, err
	}

	return &Document{
		Wood:     woodParams,
		Conveyor: conveyorParams,
		Pickers:  pickers,
	}, nil
}

func decodeWood(doc woodDocument) (wood.Parameters, error) {
	densities := make(wood.Densities, len(doc.FastenerDensities))
	for name, density := range doc.FastenerDensities {
		kind, err := parseKind(name)
		if err != nil {
			return wood.Parameters{}, err
		}
		if density < 0 {
			return wood.Parameters{}, fmt.Errorf("%w: %s=%v", ErrNegativeDensity, name, density)
		}
		densities[kind] = density
	}

	params := wood.Parameters{FastenerDensities: densities}
	if err := params.Validate(); err != nil {
		return wood.Parameters{}, err
	}
	return params, nil
}

// remarshal re-encodes an untyped mapstructure payload to YAML and decodes
// it into dst — the second pass of the teacher's two-stage decode.
func remarshal(payload interface{}, dst interface{}) error {
	raw, err := yaml.Marshal(payload)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, dst)
}
