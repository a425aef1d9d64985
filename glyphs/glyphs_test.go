package glyphs

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaultFont(t *testing.T) {
	f, err := LoadFont("")
	if err != nil {
		t.Fatalf("Failed to load embedded font: %v", err)
	}
	if f == nil {
		t.Fatal("Expected a font")
	}
}

func TestLoadFontMissing(t *testing.T) {
	if _, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("Expected an error for a missing font file")
	}
}

func TestCoverage(t *testing.T) {
	f, err := LoadFont("")
	if err != nil {
		t.Fatal(err)
	}

	if c := Coverage(f, ' ', DefaultCell); c != 0 {
		t.Errorf("Space should ink nothing, got %f", c)
	}
	at := Coverage(f, '@', DefaultCell)
	dot := Coverage(f, '.', DefaultCell)
	if at <= dot {
		t.Errorf("Expected '@' (%f) to ink more than '.' (%f)", at, dot)
	}
	if at <= 0 || at > 1 {
		t.Errorf("Coverage out of range: %f", at)
	}
}

func TestRampCoverage(t *testing.T) {
	f, err := LoadFont("")
	if err != nil {
		t.Fatal(err)
	}

	cov := RampCoverage(f, "@%#*+=-:. ", 24)
	if len(cov) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(cov))
	}
	if cov[0].Char != '@' || cov[9].Char != ' ' {
		t.Errorf("Entries out of order: %q ... %q", cov[0].Char, cov[9].Char)
	}
	if cov[0].Coverage <= cov[9].Coverage {
		t.Error("Darkest character should ink more than the lightest")
	}
}

func TestInversions(t *testing.T) {
	cov := []GlyphCoverage{
		{'a', 0.5},
		{'b', 0.6},
		{'c', 0.2},
		{'d', 0.2},
	}
	inv := Inversions(cov)
	if len(inv) != 1 || inv[0] != 0 {
		t.Errorf("Expected inversion at 0, got %v", inv)
	}
	if Monotonic(cov) {
		t.Error("Expected non-monotonic")
	}
	if !Monotonic(cov[1:]) {
		t.Error("Expected monotonic tail")
	}
}
