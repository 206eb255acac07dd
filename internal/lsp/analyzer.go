package lsp

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jsvensson/zed2vscode/internal/color"
	"github.com/jsvensson/zed2vscode/internal/remap"
	"github.com/jsvensson/zed2vscode/internal/zed"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagSource = "zed2vscode"

var (
	DiagWarning = protocol.DiagnosticSeverityWarning
	DiagHint    = protocol.DiagnosticSeverityHint
)

// AnalysisResult holds what the server knows about one theme family file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Keys        []KeyLocation
	Colors      []ColorLocation
}

// KeyLocation is a style key or syntax token name in the source.
type KeyLocation struct {
	Range protocol.Range
	Name  string
	Token bool // true for keys inside the syntax map
}

// ColorLocation records a hex color literal at a specific source position.
// Range covers the quoted string.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
}

// frame is an open object or array. key is the member name it is stored
// under, empty for array elements and the document root.
type frame struct {
	key    string
	object bool
}

type scanner struct {
	src  string
	off  int
	line uint32
	char uint32
}

func (s *scanner) pos() protocol.Position {
	return protocol.Position{Line: s.line, Character: s.char}
}

// advance consumes one rune. Characters are counted in UTF-16 code units,
// as LSP positions require.
func (s *scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.off:])
	s.off += size
	if r == '\n' {
		s.line++
		s.char = 0
	} else {
		s.char += uint32(len(utf16.Encode([]rune{r})))
	}
	return r
}

// readString consumes a JSON string starting at the opening quote and
// returns its raw contents. ok is false if the string is unterminated.
func (s *scanner) readString() (string, bool) {
	s.advance()
	var b strings.Builder
	for s.off < len(s.src) {
		c := s.advance()
		switch c {
		case '"':
			return b.String(), true
		case '\\':
			if s.off < len(s.src) {
				b.WriteRune(s.advance())
			}
		case '\n':
			return b.String(), false
		default:
			b.WriteRune(c)
		}
	}
	return b.String(), false
}

// followedByColon reports whether the next non-space byte is ':'.
func (s *scanner) followedByColon() bool {
	for i := s.off; i < len(s.src); i++ {
		switch s.src[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

// Analyze scans a Zed theme family document. It tolerates malformed JSON and
// reports what it could locate up to the first problem.
func Analyze(content string) *AnalysisResult {
	result := &AnalysisResult{}
	s := &scanner{src: content}

	stack := []frame{}
	pendingKey := ""

	for s.off < len(s.src) {
		switch s.src[s.off] {
		case '{', '[':
			object := s.src[s.off] == '{'
			stack = append(stack, frame{key: pendingKey, object: object})
			pendingKey = ""
			s.advance()

		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			pendingKey = ""
			s.advance()

		case ',':
			pendingKey = ""
			s.advance()

		case '"':
			start := s.pos()
			text, ok := s.readString()
			rng := protocol.Range{Start: start, End: s.pos()}
			if !ok {
				result.addWarning(rng, "unterminated string")
				return result
			}

			if s.followedByColon() {
				pendingKey = text
				result.addKey(stack, text, rng)
				continue
			}
			if inStyle(stack) {
				result.addValue(text, rng)
			}

		default:
			s.advance()
		}
	}

	return result
}

// inStyle reports whether any open object is a style map.
func inStyle(stack []frame) bool {
	for _, f := range stack {
		if f.key == "style" && f.object {
			return true
		}
	}
	return false
}

func (r *AnalysisResult) addKey(stack []frame, name string, rng protocol.Range) {
	if len(stack) == 0 || !stack[len(stack)-1].object {
		return
	}
	parent := stack[len(stack)-1].key

	switch {
	case parent == "style":
		r.Keys = append(r.Keys, KeyLocation{Range: rng, Name: name})
		if name != zed.SyntaxKey && len(remap.Lookup(name)) == 0 {
			r.addHint(rng, fmt.Sprintf("%s has no VS Code equivalent and is dropped", name))
		}

	case parent == zed.SyntaxKey && len(stack) >= 2 && stack[len(stack)-2].key == "style":
		r.Keys = append(r.Keys, KeyLocation{Range: rng, Name: name, Token: true})
		if remap.TokenScopes(name) == nil {
			r.addHint(rng, fmt.Sprintf("syntax token %s is not converted", name))
		}
	}
}

func (r *AnalysisResult) addValue(text string, rng protocol.Range) {
	if !strings.HasPrefix(text, "#") {
		return
	}
	c, err := color.ParseHex(text)
	if err != nil {
		r.addWarning(rng, err.Error())
		return
	}
	r.Colors = append(r.Colors, ColorLocation{Range: rng, Color: c})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng protocol.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &DiagWarning,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// addHint adds a hint-level diagnostic at the given range.
func (r *AnalysisResult) addHint(rng protocol.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &DiagHint,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}
