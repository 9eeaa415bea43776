package config

import (
	"encoding/json"
	"fmt"
)

// Preferences are the settings a player changes at runtime and expects to
// find again on the next start.
type Preferences struct {
	Interpolation   bool `json:"interpolation"`
	Ghosts          bool `json:"ghosts"`
	TickRate        int  `json:"tickRate"`
	ShowHUD         bool `json:"showHud"`
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

// CurrentPreferences reads the preferences out of the global config.
// Fullscreen and ResolutionIndex are window state the caller fills in.
func CurrentPreferences() Preferences {
	return Preferences{
		Interpolation:   Interp.Enabled,
		Ghosts:          Interp.Ghosts,
		TickRate:        Sim.TickRate,
		ShowHUD:         Render.ShowHUD,
		ResolutionIndex: SettingsMenu.DefaultResolutionIndex,
	}
}

// Apply writes p back into the global config. Out-of-range values are
// clamped rather than rejected.
func (p Preferences) Apply() {
	Interp.Enabled = p.Interpolation
	Interp.Ghosts = p.Ghosts
	Render.ShowHUD = p.ShowHUD
	if p.TickRate > 0 {
		Sim.TickRate = p.TickRate
		ClampTickRate()
	}
}

// Resolution returns the saved window size, or the default one when the
// index is out of range.
func (p Preferences) Resolution() Resolution {
	idx := p.ResolutionIndex
	if idx < 0 || idx >= len(SettingsMenu.Resolutions) {
		idx = SettingsMenu.DefaultResolutionIndex
	}
	return SettingsMenu.Resolutions[idx]
}

// DecodePreferences parses saved preferences. Missing fields keep the
// current config values.
func DecodePreferences(data []byte) (Preferences, error) {
	p := CurrentPreferences()
	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	return p, nil
}

// Encode serializes p for storage.
func (p Preferences) Encode() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	return data, nil
}
