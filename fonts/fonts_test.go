package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(14); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Small, Mono} {
		if name.Get() == nil {
			t.Errorf("Expected face for %s", name)
		}
	}
	if Regular.Get().Metrics().Height <= Small.Get().Metrics().Height {
		t.Error("Expected the small face to be shorter than the regular face")
	}
}

func TestLoadFontErrors(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("Expected a parse error")
	}
	if err := LoadFont("tiny", goregular.TTF); err != nil {
		t.Errorf("LoadFont: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for an unknown font")
		}
	}()
	FontName("missing").Get()
}
