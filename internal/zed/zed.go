// Package zed decodes Zed theme-family files.
package zed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// SyntaxKey is the reserved style key holding syntax token styles.
const SyntaxKey = "syntax"

// Bundle is a theme-family file: one author and several theme variants.
type Bundle struct {
	Schema string  `json:"$schema,omitempty"`
	Name   string  `json:"name"`
	Author string  `json:"author,omitempty"`
	Themes []Theme `json:"themes"`
}

// Theme is a single Zed theme. Style is nil when the document has no style map.
type Theme struct {
	Name       string `json:"name"`
	Appearance string `json:"appearance,omitempty"`
	Style      Style  `json:"style"`
}

// Style maps dotted role keys to color values. Values are whatever the JSON
// decoder produced: strings for colors, nil for explicit nulls, and a nested
// map for the "syntax" key.
type Style map[string]any

// Color returns the string value stored under key. Missing keys and
// non-string values (including null) report false.
func (s Style) Color(key string) (string, bool) {
	v, ok := s[key].(string)
	return v, ok
}

// Syntax returns the syntax token map, or nil if the style has none or it is
// not an object.
func (s Style) Syntax() map[string]any {
	m, _ := s[SyntaxKey].(map[string]any)
	return m
}

// TokenStyle is the resolved form of a syntax token entry.
type TokenStyle struct {
	Color      string
	FontWeight *float64
}

// Token resolves a syntax entry. A bare string is the foreground color; an
// object contributes its "color" and "font_weight" fields when they have the
// right type. ok is false when the token is absent or of an unusable type.
func Token(syntax map[string]any, name string) (TokenStyle, bool) {
	switch v := syntax[name].(type) {
	case string:
		return TokenStyle{Color: v}, true
	case map[string]any:
		var ts TokenStyle
		if c, ok := v["color"].(string); ok {
			ts.Color = c
		}
		if w, ok := v["font_weight"].(float64); ok {
			ts.FontWeight = &w
		}
		return ts, true
	default:
		return TokenStyle{}, false
	}
}

// ReadBundle decodes a theme-family document.
func ReadBundle(r io.Reader) (*Bundle, error) {
	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decoding theme family: %w", err)
	}
	if b.Themes == nil {
		return nil, fmt.Errorf("decoding theme family: no themes field")
	}
	return &b, nil
}

// LoadBundle reads and decodes the theme-family file at path.
func LoadBundle(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme family: %w", err)
	}
	defer f.Close()

	return ReadBundle(f)
}

// Find returns the first theme whose name contains search and, if qualifier
// is non-empty, also contains qualifier.
func (b *Bundle) Find(search, qualifier string) (*Theme, bool) {
	for i := range b.Themes {
		name := b.Themes[i].Name
		if !strings.Contains(name, search) {
			continue
		}
		if qualifier != "" && !strings.Contains(name, qualifier) {
			continue
		}
		return &b.Themes[i], true
	}
	return nil, false
}
