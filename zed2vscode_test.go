package zed2vscode

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvert(t *testing.T) {
	input := `{
  "name": "Mocha (Blur)",
  "appearance": "dark",
  "style": {
    "background": "#1e1e2eff",
    "editor.background": "#00000000",
    "text": "#cdd6f4ff",
    "syntax": {"keyword": {"color": "#cba6f7ff", "font_weight": 700}}
  }
}`

	var out bytes.Buffer
	if err := Convert(strings.NewReader(input), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}

	want := map[string]any{
		"$schema": "vscode://schemas/color-theme",
		"name":    "Mocha",
		"type":    "dark",
		"colors": map[string]any{
			"editor.background":      "#1e1e2eff",
			"window.background":      "#1e1e2eff",
			"foreground":             "#cdd6f4ff",
			"editor.foreground":      "#cdd6f4ff",
			"sideBar.foreground":     "#cdd6f4ff",
			"activityBar.foreground": "#cdd6f4ff",
		},
		"tokenColors": []any{
			map[string]any{
				"scope":    []any{"keyword"},
				"settings": map[string]any{"foreground": "#cba6f7ff", "fontStyle": "bold"},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Convert() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertMalformed(t *testing.T) {
	err := Convert(strings.NewReader(`{"name": "No Style"}`), &bytes.Buffer{})
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Convert() error = %v, want ErrMalformed", err)
	}

	if err := Convert(strings.NewReader(`{`), &bytes.Buffer{}); err == nil {
		t.Error("expected decode error")
	}
}
