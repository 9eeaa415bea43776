package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a config file. Sections that are absent keep
// their current values.
type File struct {
	Window  Config        `toml:"window" yaml:"window"`
	Sim     SimConfig     `toml:"sim" yaml:"sim"`
	Interp  InterpConfig  `toml:"interp" yaml:"interp"`
	Render  RenderConfig  `toml:"render" yaml:"render"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Assets  AssetsConfig  `toml:"assets" yaml:"assets"`
}

// LoadFile overlays the file at path onto the global config. The format is
// picked by extension: .toml, or .yaml/.yml.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	f := current()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}

	apply(f)
	return nil
}

func current() File {
	return File{
		Window:  *C,
		Sim:     Sim,
		Interp:  Interp,
		Render:  Render,
		Logging: Logging,
		Server:  Server,
		Assets:  Assets,
	}
}

func apply(f File) {
	w := f.Window
	C = &w
	Sim = f.Sim
	Interp = f.Interp
	Render = f.Render
	Logging = f.Logging
	Server = f.Server
	Assets = f.Assets
	ClampTickRate()
}

// ClampTickRate keeps Sim.TickRate within its configured bounds.
func ClampTickRate() {
	if Sim.MinTickRate < 1 {
		Sim.MinTickRate = 1
	}
	if Sim.MaxTickRate < Sim.MinTickRate {
		Sim.MaxTickRate = Sim.MinTickRate
	}
	if Sim.TickRate < Sim.MinTickRate {
		Sim.TickRate = Sim.MinTickRate
	}
	if Sim.TickRate > Sim.MaxTickRate {
		Sim.TickRate = Sim.MaxTickRate
	}
}
