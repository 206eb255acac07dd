package color

import (
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"with hash", "#eb6f92", Color{235, 111, 146, 255}, false},
		{"without hash", "eb6f92", Color{235, 111, 146, 255}, false},
		{"with alpha", "#1e1e2ecc", Color{30, 30, 46, 204}, false},
		{"transparent black", "#00000000", Color{0, 0, 0, 0}, false},
		{"short form", "#fa0", Color{255, 170, 0, 255}, false},
		{"uppercase", "#AABBCC", Color{170, 187, 204, 255}, false},
		{"too short", "#ff", Color{}, true},
		{"seven digits", "#aabbccd", Color{}, true},
		{"too long", "#aabbccddee", Color{}, true},
		{"invalid chars", "#zzzzzz", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	c := Color{235, 111, 146, 128}
	if got := c.Hex(); got != "#eb6f92" {
		t.Errorf("Color.Hex() = %q, want %q", got, "#eb6f92")
	}
	if got := c.HexAlpha(); got != "#eb6f9280" {
		t.Errorf("Color.HexAlpha() = %q, want %q", got, "#eb6f9280")
	}
}

func TestColorHexZeroPadding(t *testing.T) {
	c := Color{0, 5, 10, 1}
	if got := c.HexAlpha(); got != "#00050a01" {
		t.Errorf("Color.HexAlpha() = %q, want %q", got, "#00050a01")
	}
}

func TestColorRGB(t *testing.T) {
	c := Color{235, 111, 146, 255}
	if got := c.RGB(); got != "rgb(235, 111, 146)" {
		t.Errorf("Color.RGB() = %q", got)
	}
	if got := c.RGBA(); got != "rgba(235, 111, 146, 1.00)" {
		t.Errorf("Color.RGBA() = %q", got)
	}
	if got := (Color{0, 0, 0, 0}).RGBA(); got != "rgba(0, 0, 0, 0.00)" {
		t.Errorf("Color.RGBA() = %q", got)
	}
}

func TestTransparent(t *testing.T) {
	if !(Color{}).Transparent() {
		t.Error("zero color should be transparent")
	}
	if (Color{A: 1}).Transparent() {
		t.Error("color with alpha should not be transparent")
	}
}
