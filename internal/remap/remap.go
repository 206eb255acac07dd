// Package remap converts Zed themes to VS Code color themes.
//
// The conversion is a lossy lexical remap: style keys listed in the
// translation tables are copied to their VS Code counterparts, recognized
// syntax tokens become token color rules, and everything else is dropped.
package remap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsvensson/zed2vscode/internal/vscode"
	"github.com/jsvensson/zed2vscode/internal/zed"
)

// ErrMalformed is returned for documents without a style map.
var ErrMalformed = errors.New("malformed theme document")

// BlurMarker is removed from theme names.
const BlurMarker = " (Blur)"

const defaultType = "dark"

// boldWeight is the heaviest font weight still rendered as normal.
const boldWeight = 400

// Convert translates a Zed theme into a VS Code color theme. It does not
// modify doc.
func Convert(doc *zed.Theme) (*vscode.Theme, error) {
	if doc == nil || doc.Style == nil {
		return nil, fmt.Errorf("converting theme: %w: no style map", ErrMalformed)
	}

	typ := doc.Appearance
	if typ == "" {
		typ = defaultType
	}

	out := vscode.New(Name(doc.Name), typ)
	applyColors(doc.Style, out.Colors)
	out.TokenColors = append(out.TokenColors, tokenColors(doc.Style.Syntax())...)

	return out, nil
}

// Name strips the blur marker from a theme name. The marker is removed
// wherever it occurs, together with its leading space, so
// "Mocha (Blur) [Light]" becomes "Mocha [Light]". The result never contains
// "(Blur)".
func Name(name string) string {
	name = strings.ReplaceAll(name, BlurMarker, "")
	return strings.ReplaceAll(name, strings.TrimSpace(BlurMarker), "")
}

func applyColors(style zed.Style, colors map[string]string) {
	for _, tr := range colorRoles {
		v, ok := style.Color(tr.Source)
		if !ok {
			continue
		}
		if tr.SkipTransparent && v == TransparentBlack {
			continue
		}
		for _, target := range tr.Targets {
			colors[target] = v
		}
	}

	for _, pair := range ansiColors {
		if v, ok := style.Color(pair[0]); ok {
			colors[pair[1]] = v
		}
	}
}

func tokenColors(syntax map[string]any) []vscode.TokenColor {
	if syntax == nil {
		return nil
	}

	var rules []vscode.TokenColor
	for _, ts := range tokenScopes {
		tok, ok := zed.Token(syntax, ts.token)
		if !ok {
			continue
		}

		settings := vscode.TokenSettings{Foreground: tok.Color}
		if tok.FontWeight != nil {
			settings.FontStyle = fontStyle(*tok.FontWeight)
		}
		if settings.Empty() {
			continue
		}

		rules = append(rules, vscode.TokenColor{
			Scope:    append([]string(nil), ts.scopes...),
			Settings: settings,
		})
	}
	return rules
}

func fontStyle(weight float64) string {
	if weight > boldWeight {
		return "bold"
	}
	return "normal"
}

// Lookup returns every translation reading the given style key, in the order
// they are applied. ANSI renames are reported as single-target translations.
func Lookup(source string) []Translation {
	var out []Translation
	for _, tr := range colorRoles {
		if tr.Source == source {
			tr.Targets = append([]string(nil), tr.Targets...)
			out = append(out, tr)
		}
	}
	for _, pair := range ansiColors {
		if pair[0] == source {
			out = append(out, Translation{Source: pair[0], Targets: []string{pair[1]}})
		}
	}
	return out
}

// TokenScopes returns the scopes a syntax token is emitted under, or nil if
// the token is not converted.
func TokenScopes(token string) []string {
	for _, ts := range tokenScopes {
		if ts.token == token {
			return append([]string(nil), ts.scopes...)
		}
	}
	return nil
}

// Tokens lists the converted syntax token names in emission order.
func Tokens() []string {
	names := make([]string, len(tokenScopes))
	for i, ts := range tokenScopes {
		names[i] = ts.token
	}
	return names
}
