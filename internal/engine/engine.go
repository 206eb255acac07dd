// Package engine runs a conversion config: it loads the source theme family,
// converts every selected theme and writes the results.
package engine

import (
	"fmt"

	"github.com/jsvensson/zed2vscode/internal/config"
	"github.com/jsvensson/zed2vscode/internal/remap"
	"github.com/jsvensson/zed2vscode/internal/vscode"
	"github.com/jsvensson/zed2vscode/internal/zed"
	"github.com/tliron/commonlog"
)

// Engine converts the themes selected by a config.
type Engine struct {
	Config *config.Config
	Only   []string // if non-empty, only convert these selection IDs
	Log    commonlog.Logger
}

// Report describes the outcome of a run.
type Report struct {
	Written []Output
	Missing []config.Selection
}

// Output is one converted theme.
type Output struct {
	ID     string
	Source string // theme name in the source family
	Name   string // converted theme name
	Path   string
}

// Run converts each selection in turn. A selection with no matching theme is
// logged and skipped; a matching theme that cannot be converted or written
// stops the run.
func (e *Engine) Run() (*Report, error) {
	log := e.Log
	if log == nil {
		log = commonlog.GetLogger("zed2vscode.engine")
	}

	selections, err := e.Config.Selections(e.Only)
	if err != nil {
		return nil, fmt.Errorf("selecting themes: %w", err)
	}

	log.Infof("loading themes from %s", e.Config.Source)
	bundle, err := zed.LoadBundle(e.Config.Source)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, sel := range selections {
		log.Debugf("looking for %q %s", sel.Match, sel.Qualifier)

		src, ok := bundle.Find(sel.Match, sel.Qualifier)
		if !ok {
			log.Warningf("theme %q %s not found, skipping %s", sel.Match, sel.Qualifier, sel.ID)
			report.Missing = append(report.Missing, sel)
			continue
		}
		log.Debugf("found %q", src.Name)

		out, err := convertOne(src, e.Config.OutputPath(sel.ID))
		if err != nil {
			return report, fmt.Errorf("converting %s: %w", sel.ID, err)
		}
		out.ID = sel.ID

		log.Infof("saved %s to %s", out.Name, out.Path)
		report.Written = append(report.Written, out)
	}

	return report, nil
}

func convertOne(src *zed.Theme, path string) (Output, error) {
	theme, err := remap.Convert(src)
	if err != nil {
		return Output{}, err
	}
	if err := vscode.WriteFile(path, theme); err != nil {
		return Output{}, err
	}
	return Output{Source: src.Name, Name: theme.Name, Path: path}, nil
}
