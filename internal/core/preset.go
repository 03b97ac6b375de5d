package core

import (
	"errors"
	"fmt"
)

// ErrInvalidPreset is returned when a difficulty cannot be played.
var ErrInvalidPreset = errors.New("invalid preset")

// Preset describes a playable difficulty: grid dimensions plus mine count.
type Preset struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Mines int    `yaml:"mines"`
}

// Size returns the grid dimensions of the preset.
func (p Preset) Size() Size { return Size{Rows: p.Rows, Cols: p.Cols} }

// Title is the label shown to players, falling back to the name.
func (p Preset) Title() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Name
}

// Validate checks rows ≥ 1, cols ≥ 1 and 0 ≤ mines < rows*cols.
func (p Preset) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidPreset)
	case p.Rows < 1 || p.Cols < 1:
		return fmt.Errorf("%w: %s has %dx%d cells", ErrInvalidPreset, p.Name, p.Rows, p.Cols)
	case p.Mines < 0 || p.Mines >= p.Rows*p.Cols:
		return fmt.Errorf("%w: %s has %d mines on %d cells", ErrInvalidPreset, p.Name, p.Mines, p.Rows*p.Cols)
	}
	return nil
}

var (
	presets     = map[string]Preset{}
	presetOrder []string
)

// RegisterPreset adds or replaces a difficulty under p.Name. Invalid presets
// are rejected.
func RegisterPreset(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := presets[p.Name]; !ok {
		presetOrder = append(presetOrder, p.Name)
	}
	presets[p.Name] = p
	return nil
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// Presets lists the registered presets in registration order.
func Presets() []Preset {
	out := make([]Preset, 0, len(presetOrder))
	for _, name := range presetOrder {
		out = append(out, presets[name])
	}
	return out
}

func init() {
	for _, p := range []Preset{
		{Name: "normal", Label: "Normal", Rows: 9, Cols: 9, Mines: 10},
		{Name: "hard", Label: "Hard", Rows: 16, Cols: 16, Mines: 40},
	} {
		if err := RegisterPreset(p); err != nil {
			panic(err)
		}
	}
}
