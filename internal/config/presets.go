package config

// Presets are named example systems, one per qualitative equilibrium class.
var Presets = map[string]*Config{
	"saddle": {
		Matrix: Matrix{A: 1, B: 0, C: 0, D: -1},
	},
	"center": {
		Matrix: Matrix{A: 0, B: -2, C: 2, D: 0},
	},
	"spiral_sink": {
		Matrix: Matrix{A: -1, B: -2, C: 2, D: -1},
	},
	"spiral_source": {
		Matrix: Matrix{A: 1, B: -2, C: 2, D: 1},
	},
	"stable_node": {
		Matrix: Matrix{A: -2, B: 0, C: 0, D: -1},
	},
	"unstable_node": {
		Matrix: Matrix{A: 2, B: 1, C: 0, D: 1},
	},
	"improper_node": {
		Matrix: Matrix{A: 1, B: 1, C: 0, D: 1},
	},
	"degenerate": {
		Matrix: Matrix{A: 1, B: 2, C: 2, D: 4},
	},
}

// GetPreset returns a full config for the named preset: the preset matrix
// over the default integration and display settings. Returns nil for an
// unknown name.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Matrix = p.Matrix
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
