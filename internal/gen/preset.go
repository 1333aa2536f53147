package gen

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Preset is a TOML manifest supplying defaults for the generator
// parameters. Flags given explicitly on the command line win over
// preset values.
type Preset struct {
	Project PresetProject `toml:"project"`
}

// PresetProject defines the [project] section
type PresetProject struct {
	Name     string `toml:"name"`
	Compiler string `toml:"compiler"`
	Sources  int    `toml:"sources"`
	Headers  int    `toml:"headers"`
	Subdirs  int    `toml:"subdirs"`
	Output   string `toml:"output"`
}

func ParsePresetFromFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var preset Preset
	if err := toml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	return &preset, nil
}
