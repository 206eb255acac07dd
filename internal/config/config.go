// Package config loads the HCL file that selects which themes to convert.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "convert.hcl"

const configDirVar = "config_dir"

// IDPlaceholder is replaced by the selection ID in the output template.
const IDPlaceholder = "{id}"

// Config is the resolved conversion config.
type Config struct {
	Source    string
	Output    string
	Qualifier string
	Themes    []Selection
}

// Selection picks one theme out of the source family. Qualifier is the
// effective value: the block's own if set, otherwise the file-level one.
type Selection struct {
	ID        string
	Match     string
	Qualifier string
}

type fileSchema struct {
	Source    string        `hcl:"source"`
	Output    string        `hcl:"output"`
	Qualifier string        `hcl:"qualifier,optional"`
	Themes    []themeSchema `hcl:"theme,block"`
}

type themeSchema struct {
	ID        string  `hcl:"id,label"`
	Match     string  `hcl:"match"`
	Qualifier *string `hcl:"qualifier,optional"`
}

// Default returns the config that converts the light Mocha and Espresso variants.
func Default() *Config {
	return &Config{
		Source:    "themes/catppuccin-blur.json",
		Output:    "themes/catppuccin-blur-" + IDPlaceholder + ".json",
		Qualifier: "[Light]",
		Themes: []Selection{
			{ID: "mocha-light", Match: "Mocha", Qualifier: "[Light]"},
			{ID: "espresso-light", Match: "Espresso", Qualifier: "[Light]"},
		},
	}
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL config source. Expressions may reference config_dir,
// the directory containing filename.
func Parse(src []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalContext(filename), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg := &Config{
		Source:    raw.Source,
		Output:    raw.Output,
		Qualifier: raw.Qualifier,
	}
	for _, t := range raw.Themes {
		sel := Selection{ID: t.ID, Match: t.Match, Qualifier: raw.Qualifier}
		if t.Qualifier != nil {
			sel.Qualifier = *t.Qualifier
		}
		cfg.Themes = append(cfg.Themes, sel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func evalContext(filename string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			configDirVar: cty.StringVal(filepath.Dir(filename)),
		},
	}
}

// Validate checks required fields and selection IDs.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("config: source must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("config: output must not be empty")
	}
	if len(c.Themes) == 0 {
		return fmt.Errorf("config: at least one theme block is required")
	}
	if len(c.Themes) > 1 && !strings.Contains(c.Output, IDPlaceholder) {
		return fmt.Errorf("config: output must contain %s when converting more than one theme", IDPlaceholder)
	}

	seen := make(map[string]bool, len(c.Themes))
	for _, sel := range c.Themes {
		if sel.ID == "" {
			return fmt.Errorf("config: theme id must not be empty")
		}
		if seen[sel.ID] {
			return fmt.Errorf("config: duplicate theme %q", sel.ID)
		}
		seen[sel.ID] = true
		if sel.Match == "" {
			return fmt.Errorf("config: theme %q: match must not be empty", sel.ID)
		}
	}
	return nil
}

// OutputPath returns the output file for a selection ID.
func (c *Config) OutputPath(id string) string {
	return strings.ReplaceAll(c.Output, IDPlaceholder, id)
}

// Selections returns the selections whose IDs are listed in only, in config
// order. An empty only returns all of them.
func (c *Config) Selections(only []string) ([]Selection, error) {
	if len(only) == 0 {
		return c.Themes, nil
	}

	for _, id := range only {
		if !slices.ContainsFunc(c.Themes, func(s Selection) bool { return s.ID == id }) {
			return nil, fmt.Errorf("unknown theme %q", id)
		}
	}

	var out []Selection
	for _, sel := range c.Themes {
		if slices.Contains(only, sel.ID) {
			out = append(out, sel)
		}
	}
	return out, nil
}

// Encode renders c as canonical HCL. Relative paths are written under
// ${config_dir} so the file resolves them against its own directory. A theme
// block carries its own qualifier only when it differs from the file-level one.
func Encode(c *Config) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.SetAttributeRaw("source", pathTokens(c.Source))
	body.SetAttributeRaw("output", pathTokens(c.Output))
	if c.Qualifier != "" {
		body.SetAttributeValue("qualifier", cty.StringVal(c.Qualifier))
	}

	for _, sel := range c.Themes {
		body.AppendNewline()
		block := body.AppendNewBlock("theme", []string{sel.ID})
		block.Body().SetAttributeValue("match", cty.StringVal(sel.Match))
		if sel.Qualifier != c.Qualifier {
			block.Body().SetAttributeValue("qualifier", cty.StringVal(sel.Qualifier))
		}
	}

	return hclwrite.Format(f.Bytes())
}

// pathTokens renders p as a quoted string, prefixed with ${config_dir} when p
// is relative.
func pathTokens(p string) hclwrite.Tokens {
	if filepath.IsAbs(p) {
		return hclwrite.TokensForValue(cty.StringVal(p))
	}

	quoted := hclwrite.TokensForValue(cty.StringVal("/" + strings.TrimPrefix(p, "./")))
	tokens := hclwrite.Tokens{quoted[0]}
	tokens = append(tokens,
		&hclwrite.Token{Type: hclsyntax.TokenTemplateInterp, Bytes: []byte("${")},
		&hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte(configDirVar)},
		&hclwrite.Token{Type: hclsyntax.TokenTemplateSeqEnd, Bytes: []byte("}")},
	)
	return append(tokens, quoted[1:]...)
}

// Format returns src in canonical HCL style. It works on partial or invalid
// input.
func Format(src []byte) []byte {
	return hclwrite.Format(src)
}
