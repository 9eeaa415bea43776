package config

import "testing"

func TestPreferencesApply(t *testing.T) {
	snapshot(t)

	Preferences{Interpolation: false, Ghosts: true, TickRate: 500, ShowHUD: false}.Apply()
	if Interp.Enabled || !Interp.Ghosts || Render.ShowHUD {
		t.Errorf("Expected flags to be applied, got interp=%v ghosts=%v hud=%v",
			Interp.Enabled, Interp.Ghosts, Render.ShowHUD)
	}
	if Sim.TickRate != Sim.MaxTickRate {
		t.Errorf("Expected tick rate clamped to %d, got %d", Sim.MaxTickRate, Sim.TickRate)
	}

	Preferences{Interpolation: true, TickRate: 0}.Apply()
	if Sim.TickRate != Sim.MaxTickRate {
		t.Errorf("Expected a zero tick rate to keep the current one, got %d", Sim.TickRate)
	}
}

func TestDecodePreferences(t *testing.T) {
	snapshot(t)
	Sim.TickRate = 20

	p, err := DecodePreferences([]byte(`{"ghosts":true,"interpolation":false}`))
	if err != nil {
		t.Fatalf("DecodePreferences: %v", err)
	}
	if !p.Ghosts || p.Interpolation {
		t.Errorf("Expected decoded flags, got %+v", p)
	}
	if p.TickRate != 20 || !p.ShowHUD {
		t.Errorf("Expected missing fields to keep current values, got %+v", p)
	}

	if _, err := DecodePreferences([]byte("{")); err == nil {
		t.Error("Expected an error for truncated JSON")
	}
}

func TestPreferencesEncodeDecode(t *testing.T) {
	snapshot(t)

	want := Preferences{Interpolation: true, Ghosts: true, TickRate: 5, ResolutionIndex: 2}
	data, err := want.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodePreferences(data)
	if err != nil {
		t.Fatalf("DecodePreferences: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestPreferencesResolution(t *testing.T) {
	if r := (Preferences{ResolutionIndex: 1}).Resolution(); r.Width != 1280 {
		t.Errorf("Expected 1280 wide, got %+v", r)
	}
	if r := (Preferences{ResolutionIndex: 99}).Resolution(); r.Width != 960 {
		t.Errorf("Expected the default resolution, got %+v", r)
	}
}
