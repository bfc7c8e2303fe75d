package config

import (
	"regexp"
	"strings"
	"testing"
)

func TestResolvePresetKnown(t *testing.T) {
	p, err := ResolvePreset("digits")
	if err != nil {
		t.Fatalf("ResolvePreset: %v", err)
	}
	if p != "[0-9]+" {
		t.Fatalf("digits preset = %q", p)
	}
}

func TestResolvePresetSuggestsForTypo(t *testing.T) {
	_, err := ResolvePreset("emial")
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), `did you mean "email"`) {
		t.Fatalf("error = %v, want email suggestion", err)
	}
}

func TestResolvePresetFarMissListsAll(t *testing.T) {
	_, err := ResolvePreset("zzzzzzzzzzzz")
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), "available:") {
		t.Fatalf("error = %v, want available list", err)
	}
}

func TestAllPresetsCompileAnchored(t *testing.T) {
	for _, name := range PresetNames() {
		p, err := ResolvePreset(name)
		if err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
		if _, err := regexp.Compile(`\A(?:` + p + `)\z`); err != nil {
			t.Fatalf("preset %q does not compile anchored: %v", name, err)
		}
	}
}

func TestPresetNamesSorted(t *testing.T) {
	names := PresetNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
