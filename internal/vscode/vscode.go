// Package vscode holds the VS Code color theme document and its writer.
package vscode

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Schema is the schema marker every color theme carries.
const Schema = "vscode://schemas/color-theme"

// Theme is a VS Code color theme. Field order here is the order on disk;
// color keys are written sorted.
type Theme struct {
	Schema      string            `json:"$schema"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Colors      map[string]string `json:"colors"`
	TokenColors []TokenColor      `json:"tokenColors"`
}

// TokenColor is a single syntax highlighting rule.
type TokenColor struct {
	Scope    []string      `json:"scope"`
	Settings TokenSettings `json:"settings"`
}

// TokenSettings holds the style applied to a scope. Empty fields are omitted.
type TokenSettings struct {
	Foreground string `json:"foreground,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// Empty reports whether no setting is populated.
func (s TokenSettings) Empty() bool {
	return s.Foreground == "" && s.FontStyle == ""
}

// New returns a theme with the schema marker set and empty collections.
func New(name, typ string) *Theme {
	return &Theme{
		Schema:      Schema,
		Name:        name,
		Type:        typ,
		Colors:      make(map[string]string),
		TokenColors: []TokenColor{},
	}
}

// Encode writes t as indented JSON.
func Encode(w io.Writer, t *Theme) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	return nil
}

// WriteFile writes t to path, creating parent directories as needed. The
// file is written to a temporary name and renamed into place, so a failed
// write leaves any existing file untouched.
func WriteFile(path string, t *Theme) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := Encode(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	return nil
}
