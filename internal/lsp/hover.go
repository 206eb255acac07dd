package lsp

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/jsvensson/zed2vscode/internal/color"
	"github.com/jsvensson/zed2vscode/internal/remap"
	"github.com/jsvensson/zed2vscode/internal/zed"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts single-line source text at an LSP range.
func extractText(content string, r protocol.Range) string {
	if r.Start.Line != r.End.Line {
		return ""
	}
	lines := strings.Split(content, "\n")
	if int(r.Start.Line) >= len(lines) {
		return ""
	}

	line := lines[r.Start.Line]
	start := byteOffset(line, r.Start.Character)
	end := byteOffset(line, r.End.Character)
	if start > end {
		return ""
	}
	return line[start:end]
}

// byteOffset converts a UTF-16 character offset into a byte offset within
// line, clamped to the line length.
func byteOffset(line string, units uint32) int {
	var n uint32
	for i, r := range line {
		if n >= units {
			return i
		}
		n += uint32(len(utf16.Encode([]rune{r})))
	}
	return len(line)
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "`" + it + "`"
	}
	return strings.Join(quoted, ", ")
}

// keyMarkdown describes what the conversion does with a key.
func keyMarkdown(kl KeyLocation) string {
	if kl.Token {
		scopes := remap.TokenScopes(kl.Name)
		if scopes == nil {
			return fmt.Sprintf("**syntax.%s**\n\nNot converted.", kl.Name)
		}
		return fmt.Sprintf("**syntax.%s**\n\nToken rule for %s", kl.Name, codeList(scopes))
	}

	if kl.Name == zed.SyntaxKey {
		return fmt.Sprintf("**syntax**\n\nConverted tokens: %s", codeList(remap.Tokens()))
	}

	translations := remap.Lookup(kl.Name)
	if len(translations) == 0 {
		return fmt.Sprintf("**%s**\n\nNot converted.", kl.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", kl.Name)
	for _, tr := range translations {
		fmt.Fprintf(&b, "\n→ %s", codeList(tr.Targets))
		if tr.SkipTransparent {
			fmt.Fprintf(&b, " (skipped when `%s`)", remap.TransparentBlack)
		}
	}
	return b.String()
}

// hover produces a Hover response for the given cursor position: the VS Code
// keys a style key feeds, or the value of a color literal. Returns nil if
// nothing is known at the position.
func hover(result *AnalysisResult, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, kl := range result.Keys {
		if !posInRange(pos, kl.Range) {
			continue
		}
		return markdownHover(keyMarkdown(kl), kl.Range)
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}
		return markdownHover(colorMarkdown(cl.Color), cl.Range)
	}

	return nil
}

// colorMarkdown shows opaque colors without their alpha channel.
func colorMarkdown(c color.Color) string {
	switch {
	case c.A == 255:
		return fmt.Sprintf("`%s` · `%s`", c.Hex(), c.RGB())
	case c.Transparent():
		return fmt.Sprintf("`%s` · `%s` (transparent)", c.HexAlpha(), c.RGBA())
	default:
		return fmt.Sprintf("`%s` · `%s`", c.HexAlpha(), c.RGBA())
	}
}

func markdownHover(md string, rng protocol.Range) *protocol.Hover {
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: md,
		},
		Range: &rng,
	}
}

func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	return hover(s.docs.Result(string(params.TextDocument.URI)), params.Position), nil
}
