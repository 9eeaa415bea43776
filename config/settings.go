package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains settings panel configuration
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	TickRates              []int // presets cycled by the panel and the -/= keys
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 540, Label: "960 x 540"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		TickRates:              []int{2, 5, 10, 15, 20, 30, 60, 120},
	}
}

// NextTickRate returns the preset after current, or current if it is the last.
func NextTickRate(current int) int {
	for _, r := range SettingsMenu.TickRates {
		if r > current {
			return r
		}
	}
	return current
}

// PrevTickRate returns the preset before current, or current if it is the first.
func PrevTickRate(current int) int {
	rates := SettingsMenu.TickRates
	for i := len(rates) - 1; i >= 0; i-- {
		if rates[i] < current {
			return rates[i]
		}
	}
	return current
}
