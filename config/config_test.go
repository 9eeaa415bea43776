package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// snapshot restores the globals after a test mutates them.
func snapshot(t *testing.T) {
	t.Helper()
	saved := current()
	t.Cleanup(func() { apply(saved) })
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantErr  string
		validate func(t *testing.T)
	}{
		{
			name: "toml overlays sections",
			file: "tickblend.toml",
			content: `
[sim]
tick_rate = 10
max_speed = 50

[interp]
enabled = false
max_frame = "100ms"

[logging]
level = "debug"
format = "json"
`,
			validate: func(t *testing.T) {
				if Sim.TickRate != 10 {
					t.Errorf("Sim.TickRate = %d, want 10", Sim.TickRate)
				}
				if Sim.MaxSpeed != 50 {
					t.Errorf("Sim.MaxSpeed = %d, want 50", Sim.MaxSpeed)
				}
				if Sim.Acceleration != 6 {
					t.Errorf("Sim.Acceleration = %d, want default 6", Sim.Acceleration)
				}
				if Interp.Enabled {
					t.Error("Interp.Enabled = true, want false")
				}
				if Interp.MaxFrame != 100*time.Millisecond {
					t.Errorf("Interp.MaxFrame = %v, want 100ms", Interp.MaxFrame)
				}
				if Logging.Level != "debug" || Logging.Format != "json" {
					t.Errorf("Logging = %+v", Logging)
				}
				if Server.Port != 7373 {
					t.Errorf("Server.Port = %d, want default 7373", Server.Port)
				}
			},
		},
		{
			name: "yaml overlays sections",
			file: "tickblend.yaml",
			content: `
window:
  width: 1280
server:
  port: 9000
assets:
  level: levels/other.tmx
`,
			validate: func(t *testing.T) {
				if C.Width != 1280 || C.Height != 540 {
					t.Errorf("window = %dx%d, want 1280x540", C.Width, C.Height)
				}
				if Server.Port != 9000 {
					t.Errorf("Server.Port = %d, want 9000", Server.Port)
				}
				if Assets.Level != "levels/other.tmx" {
					t.Errorf("Assets.Level = %q", Assets.Level)
				}
				if Assets.ScriptsDir != "scripts" {
					t.Errorf("Assets.ScriptsDir = %q, want default", Assets.ScriptsDir)
				}
			},
		},
		{
			name:    "tick rate is clamped",
			file:    "fast.yml",
			content: "sim:\n  tick_rate: 5000\n",
			validate: func(t *testing.T) {
				if Sim.TickRate != Sim.MaxTickRate {
					t.Errorf("Sim.TickRate = %d, want clamp to %d", Sim.TickRate, Sim.MaxTickRate)
				}
			},
		},
		{
			name:    "unknown extension",
			file:    "tickblend.ini",
			content: "tick_rate=5",
			wantErr: "unsupported extension",
		},
		{
			name:    "malformed toml",
			file:    "broken.toml",
			content: "[sim\ntick_rate = ",
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot(t)
			path := writeFile(t, tt.file, tt.content)

			err := LoadFile(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFile error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			tt.validate(t)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestParseControlType(t *testing.T) {
	tests := []struct {
		in     string
		want   ControlType
		wantOK bool
	}{
		{"player", ControlPlayer, true},
		{" Scripted ", ControlScripted, true},
		{"PACE", ControlPace, true},
		{"none", ControlNone, false},
		{"hovercraft", ControlNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseControlType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseControlType(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
	if ControlPace.String() != "pace" || ControlType(99).String() != "unknown" {
		t.Error("Expected String names for control types")
	}
}

func TestTickRatePresets(t *testing.T) {
	if got := NextTickRate(30); got != 60 {
		t.Errorf("NextTickRate(30) = %d, want 60", got)
	}
	if got := NextTickRate(120); got != 120 {
		t.Errorf("NextTickRate(120) = %d, want 120", got)
	}
	if got := PrevTickRate(30); got != 20 {
		t.Errorf("PrevTickRate(30) = %d, want 20", got)
	}
	if got := PrevTickRate(2); got != 2 {
		t.Errorf("PrevTickRate(2) = %d, want 2", got)
	}
	if got := PrevTickRate(7); got != 5 {
		t.Errorf("PrevTickRate(7) = %d, want 5", got)
	}
}
