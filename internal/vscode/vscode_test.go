package vscode

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	th := New("Mocha", "dark")
	if th.Schema != Schema {
		t.Errorf("Schema = %q, want %q", th.Schema, Schema)
	}
	if th.Colors == nil {
		t.Error("Colors should be non-nil")
	}
	if th.TokenColors == nil {
		t.Error("TokenColors should be non-nil")
	}
}

func TestEncode(t *testing.T) {
	th := New("Mocha", "dark")
	th.Colors["foreground"] = "#cdd6f4ff"
	th.Colors["editor.background"] = "#1e1e2eff"
	th.TokenColors = append(th.TokenColors, TokenColor{
		Scope:    []string{"keyword"},
		Settings: TokenSettings{Foreground: "#cba6f7ff", FontStyle: "bold"},
	})

	var buf bytes.Buffer
	if err := Encode(&buf, th); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{
  "$schema": "vscode://schemas/color-theme",
  "name": "Mocha",
  "type": "dark",
  "colors": {
    "editor.background": "#1e1e2eff",
    "foreground": "#cdd6f4ff"
  },
  "tokenColors": [
    {
      "scope": [
        "keyword"
      ],
      "settings": {
        "foreground": "#cba6f7ff",
        "fontStyle": "bold"
      }
    }
  ]
}
`
	if got := buf.String(); got != want {
		t.Errorf("Encode output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeEmptyTokenColors(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, New("Empty", "light")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"tokenColors": []`) {
		t.Errorf("expected empty tokenColors array, got:\n%s", buf.String())
	}
}

func TestEncodeOmitsEmptySettings(t *testing.T) {
	th := New("Bold", "dark")
	th.TokenColors = append(th.TokenColors, TokenColor{
		Scope:    []string{"keyword"},
		Settings: TokenSettings{FontStyle: "bold"},
	})

	var buf bytes.Buffer
	if err := Encode(&buf, th); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "foreground") {
		t.Errorf("empty foreground should be omitted, got:\n%s", buf.String())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "theme.json")
	th := New("Mocha", "dark")
	th.Colors["foreground"] = "#cdd6f4ff"

	if err := WriteFile(path, th); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got Theme
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
	if got.Name != "Mocha" || got.Colors["foreground"] != "#cdd6f4ff" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestSettingsEmpty(t *testing.T) {
	if !(TokenSettings{}).Empty() {
		t.Error("zero settings should be empty")
	}
	if (TokenSettings{FontStyle: "normal"}).Empty() {
		t.Error("settings with fontStyle should not be empty")
	}
}

func TestWriteFileReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.json")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, New("Mocha", "dark")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"name": "Mocha"`) {
		t.Errorf("file not replaced:\n%s", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, got %d entries", len(entries))
	}
}

func TestWriteFileFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the target path makes the final rename fail.
	path := filepath.Join(dir, "theme.json")
	if err := os.MkdirAll(filepath.Join(path, "keep"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, New("Mocha", "dark")); err == nil {
		t.Fatal("expected error, got nil")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "theme.json" {
		t.Errorf("temporary file left behind: %v", entries)
	}
}
