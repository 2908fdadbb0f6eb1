package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	cfg, err := decodePlatformer(defaultPlatformerYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not decode: %v", err)
	}
	def := DefaultPlatformerConfig()

	if cfg.World != def.World {
		t.Errorf("World = %+v, expected %+v", cfg.World, def.World)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("Physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Jump != def.Jump {
		t.Errorf("Jump = %+v, expected %+v", cfg.Jump, def.Jump)
	}
	if cfg.Level != def.Level {
		t.Errorf("Level = %+v, expected %+v", cfg.Level, def.Level)
	}
	if cfg.Profiles != def.Profiles {
		t.Errorf("Profiles = %+v, expected %+v", cfg.Profiles, def.Profiles)
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("Difficulty = %+v, expected %+v", cfg.Difficulty, def.Difficulty)
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := DefaultPlatformerConfig()

	if cfg.World.Width != 800 || cfg.World.Height != 400 {
		t.Errorf("world = %gx%g, expected 800x400", cfg.World.Width, cfg.World.Height)
	}
	if got := cfg.ScreenOffset(); got != 800.0/3 {
		t.Errorf("ScreenOffset() = %g, expected %g", got, 800.0/3)
	}
	if cfg.Physics.Gravity != 0.5 || cfg.Jump.Force != 12 || cfg.Jump.DoubleForce != 10 {
		t.Errorf("unexpected physics constants: %+v %+v", cfg.Physics, cfg.Jump)
	}
	if cfg.Jump.Duration != 30 || cfg.Jump.MaxJumps != 2 {
		t.Errorf("unexpected jump limits: %+v", cfg.Jump)
	}
	if cfg.Profile(DeviceDesktop).PlayerSize != 30 || cfg.Profile(DeviceMobile).PlayerSize != 40 {
		t.Error("unexpected player sizes per device")
	}
	if cfg.Input.HoldTicks != 40 {
		t.Errorf("input.hold_ticks = %d, expected 40", cfg.Input.HoldTicks)
	}
}

func TestValidateReportsEverySetting(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.Jump.Duration = 0
	cfg.Level.CoinChance = 2
	cfg.Profiles.Mobile.PlayerSize = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"jump.duration", "level.coin_chance", "profiles.mobile.player_size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
	if err := DefaultPlatformerConfig().Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "platformer.yaml")
	yaml := "physics:\n  gravity: 0.8\njump:\n  max_jumps: 3\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %g, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Jump.MaxJumps != 3 {
		t.Errorf("MaxJumps = %d, expected 3", cfg.Jump.MaxJumps)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Jump.Force != 12 {
		t.Errorf("Force = %g, expected default 12", cfg.Jump.Force)
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "physics: [\n", "failed to parse"},
		{"invalid value", "jump:\n  duration: 0\n", "jump.duration"},
		{"bad range", "profiles:\n  desktop:\n    gap: {min: 50, max: 10}\n", "profiles.desktop.gap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadPlatformer(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestLoadPlatformerFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if cfg.World.Width != 800 {
		t.Errorf("expected embedded defaults, got width %g", cfg.World.Width)
	}
}

func TestParseDeviceClass(t *testing.T) {
	tests := []struct {
		in      string
		want    DeviceClass
		wantErr bool
	}{
		{"", DeviceAuto, false},
		{"auto", DeviceAuto, false},
		{"desktop", DeviceDesktop, false},
		{"mobile", DeviceMobile, false},
		{"tablet", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDeviceClass(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDeviceClass(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDeviceClass(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveDevice(t *testing.T) {
	cfg := DefaultPlatformerConfig()

	tests := []struct {
		requested DeviceClass
		width     int
		want      DeviceClass
	}{
		{DeviceAuto, 80, DeviceMobile},
		{DeviceAuto, 96, DeviceDesktop},
		{DeviceAuto, 200, DeviceDesktop},
		{DeviceAuto, 0, DeviceDesktop},
		{DeviceMobile, 200, DeviceMobile},
		{DeviceDesktop, 40, DeviceDesktop},
	}
	for _, tt := range tests {
		if got := cfg.ResolveDevice(tt.requested, tt.width); got != tt.want {
			t.Errorf("ResolveDevice(%q, %d) = %q, expected %q", tt.requested, tt.width, got, tt.want)
		}
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{"", false, 0},
		{DifficultyEasy, true, 0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0},
	}
	for _, tt := range tests {
		cfg := DefaultPlatformerConfig()
		ApplyPlatformerPreset(&cfg, tt.preset)
		if cfg.Difficulty.Enabled != tt.wantEnabled {
			t.Errorf("%q: Enabled = %v, expected %v", tt.preset, cfg.Difficulty.Enabled, tt.wantEnabled)
		}
		if cfg.Difficulty.InitialLevel != tt.wantLevel {
			t.Errorf("%q: InitialLevel = %g, expected %g", tt.preset, cfg.Difficulty.InitialLevel, tt.wantLevel)
		}
	}

	if _, err := ParseDifficultyPreset("insane"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultPlatformerConfig().Difficulty
	base := Range{Min: 30, Max: 120}

	off := NewDifficultyManager(cfg)
	if off.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := off.ObstacleChance(0.2, 0, 50000); got != 0.2 {
		t.Errorf("disabled ObstacleChance = %g, expected 0.2", got)
	}
	if got := off.Gap(base, 0, 50000); got != base {
		t.Errorf("disabled Gap = %+v, expected %+v", got, base)
	}

	cfg.Enabled = true
	cfg.InitialLevel = 0.5
	on := NewDifficultyManager(cfg)

	if got := on.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %g, expected 0.5", got)
	}
	if got := on.Level(0, 10000); got != 0.75 {
		t.Errorf("Level halfway = %g, expected 0.75", got)
	}
	if got := on.Level(0, 1e9); got != 1 {
		t.Errorf("Level past max_at = %g, expected 1", got)
	}
	if got := on.ObstacleChance(0.2, 0, 1e9); math.Abs(got-0.45) > 1e-9 {
		t.Errorf("ObstacleChance at max = %g, expected 0.45", got)
	}
	if got := on.Gap(base, 0, 1e9); got.Max != 150 || got.Min != 30 {
		t.Errorf("Gap at max = %+v, expected {30 150}", got)
	}
}
