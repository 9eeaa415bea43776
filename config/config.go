package config

import (
	"image/color"
	"time"
)

// SimConfig contains the fixed-tick car simulation tuning.
// Distances are world units, angles are 4096 per turn, rates are per tick.
type SimConfig struct {
	TickRate    int `toml:"tick_rate" yaml:"tick_rate"`
	MinTickRate int `toml:"min_tick_rate" yaml:"min_tick_rate"`
	MaxTickRate int `toml:"max_tick_rate" yaml:"max_tick_rate"`

	WorldScale int32 `toml:"world_scale" yaml:"world_scale"` // world units per level pixel

	MaxSpeed     int32   `toml:"max_speed" yaml:"max_speed"`
	ReverseSpeed int32   `toml:"reverse_speed" yaml:"reverse_speed"`
	Acceleration int32   `toml:"acceleration" yaml:"acceleration"`
	Drag         float64 `toml:"drag" yaml:"drag"`           // fraction of speed lost per tick
	TurnRate     int32   `toml:"turn_rate" yaml:"turn_rate"` // heading change at full steer and full speed
	MaxRoll      int32   `toml:"max_roll" yaml:"max_roll"`   // body lean at full steer
	Bounce       float64 `toml:"bounce" yaml:"bounce"`       // speed kept (negated) after hitting a wall

	CarWidth  int32 `toml:"car_width" yaml:"car_width"`
	CarLength int32 `toml:"car_length" yaml:"car_length"`

	// PaceRange is the default pace car travel in world units.
	PaceRange int32 `toml:"pace_range" yaml:"pace_range"`
}

// InterpConfig contains the render-side blending options.
type InterpConfig struct {
	Enabled  bool          `toml:"enabled" yaml:"enabled"`
	Ghosts   bool          `toml:"ghosts" yaml:"ghosts"`
	MaxFrame time.Duration `toml:"max_frame" yaml:"max_frame"`
}

// RenderConfig contains colors and sizes used by the window and HUD.
type RenderConfig struct {
	Background color.RGBA                 `toml:"-" yaml:"-"`
	WallColor  color.RGBA                 `toml:"-" yaml:"-"`
	GhostPrev  color.RGBA                 `toml:"-" yaml:"-"`
	GhostCur   color.RGBA                 `toml:"-" yaml:"-"`
	CarColors  map[ControlType]color.RGBA `toml:"-" yaml:"-"`
	FontSize   float64                    `toml:"font_size" yaml:"font_size"`
	HUDMargin  int                        `toml:"hud_margin" yaml:"hud_margin"`
	CameraLerp float64                    `toml:"camera_lerp" yaml:"camera_lerp"`
	Zoom       float64                    `toml:"zoom" yaml:"zoom"`
	ShowHUD    bool                       `toml:"show_hud" yaml:"show_hud"`
	ShowPanel  bool                       `toml:"show_panel" yaml:"show_panel"`
	GridCellPx int                        `toml:"grid_cell_px" yaml:"grid_cell_px"` // terminal spectator: level pixels per cell
}

// LoggingConfig selects the zap logger.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "console" or "json"
}

// ServerConfig contains spectator server options.
type ServerConfig struct {
	Port int `toml:"port" yaml:"port"`
}

// AssetsConfig names the embedded assets loaded at start-up.
type AssetsConfig struct {
	Level      string `toml:"level" yaml:"level"`
	ScriptsDir string `toml:"scripts_dir" yaml:"scripts_dir"`
	AppName    string `toml:"app_name" yaml:"app_name"` // gdata save namespace
}

// Config holds general window configuration
type Config struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

// Global configuration instances
var C *Config
var Sim SimConfig
var Interp InterpConfig
var Render RenderConfig
var Logging LoggingConfig
var Server ServerConfig
var Assets AssetsConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple      = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue    = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	SlateGray   = color.RGBA{R: 70, G: 80, B: 95, A: 255}
	NightSky    = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	GhostRed    = color.RGBA{R: 255, G: 60, B: 60, A: 90}
	GhostGreen  = color.RGBA{R: 60, G: 255, B: 60, A: 90}
	PanelShadow = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "tickblend",
	}

	Sim = SimConfig{
		TickRate:    30,
		MinTickRate: 2,
		MaxTickRate: 120,

		WorldScale: 16,

		MaxSpeed:     96,
		ReverseSpeed: 32,
		Acceleration: 6,
		Drag:         0.04,
		TurnRate:     48,
		MaxRoll:      180,
		Bounce:       0.5,

		CarWidth:  12 * 16,
		CarLength: 20 * 16,

		PaceRange: 200 * 16,
	}

	Interp = InterpConfig{
		Enabled:  true,
		Ghosts:   false,
		MaxFrame: 250 * time.Millisecond,
	}

	Render = RenderConfig{
		Background: NightSky,
		WallColor:  SlateGray,
		GhostPrev:  GhostRed,
		GhostCur:   GhostGreen,
		CarColors: map[ControlType]color.RGBA{
			ControlPlayer:   LightBlue,
			ControlScripted: Orange,
			ControlPace:     Purple,
		},
		FontSize:   14,
		HUDMargin:  8,
		CameraLerp: 0.15,
		Zoom:       1.0,
		ShowHUD:    true,
		ShowPanel:  true,
		GridCellPx: 16,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}

	Server = ServerConfig{
		Port: 7373,
	}

	Assets = AssetsConfig{
		Level:      "levels/arena.tmx",
		ScriptsDir: "scripts",
		AppName:    "tickblend",
	}
}
