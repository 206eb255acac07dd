// Package zed2vscode converts Zed themes to VS Code color themes.
package zed2vscode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsvensson/zed2vscode/internal/remap"
	"github.com/jsvensson/zed2vscode/internal/vscode"
	"github.com/jsvensson/zed2vscode/internal/zed"
)

// ErrMalformed is returned when a theme has no style map.
var ErrMalformed = remap.ErrMalformed

// Convert reads a single Zed theme document from r and writes the converted
// VS Code theme to w.
func Convert(r io.Reader, w io.Writer) error {
	var doc zed.Theme
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("decoding theme: %w", err)
	}

	theme, err := remap.Convert(&doc)
	if err != nil {
		return err
	}
	return vscode.Encode(w, theme)
}
