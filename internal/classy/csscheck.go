package classy

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Finding represents a single problem in an exported block
type Finding struct {
	Check    string     `json:"Check"` // "csscheck"
	Text     string     `json:"Text"`
	Severity string     `json:"Severity"`
	Pos      FindingPos `json:"Pos"`
}

// FindingPos locates a finding inside the checked content
type FindingPos struct {
	Line   int `json:"Line"`   // 1-based
	Offset int `json:"Offset"` // Byte offset
}

// Finding severity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// checkerState maintains context while tokenizing the exported block
type checkerState struct {
	findings []Finding
	line     int
	offset   int

	depth       int
	parenDepth  int
	currentProp string
	valueTokens int
	seenProps   map[string]bool
	sawRoot     bool
}

func (s *checkerState) add(severity, format string, args ...interface{}) {
	s.findings = append(s.findings, Finding{
		Check:    "csscheck",
		Text:     fmt.Sprintf(format, args...),
		Severity: severity,
		Pos:      FindingPos{Line: s.line, Offset: s.offset},
	})
}

// CheckCustomProperties tokenizes a :root custom-properties block and
// returns structural findings. An empty result means the block is sound.
func CheckCustomProperties(content string) []Finding {
	state := &checkerState{
		line:      1,
		seenProps: make(map[string]bool),
	}

	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		state.handleToken(tt, text)

		state.offset += len(text)
		state.line += bytes.Count(text, []byte("\n"))
	}

	state.flushDeclaration(true)
	if state.depth != 0 {
		state.add(SeverityError, "unterminated block: missing closing brace")
	}
	if !state.sawRoot {
		state.add(SeverityWarning, "no :root selector found")
	}

	return state.findings
}

// HasErrors reports whether any finding is error severity.
func HasErrors(findings []Finding) bool {
	for _, finding := range findings {
		if finding.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (s *checkerState) handleToken(tt css.TokenType, text []byte) {
	switch tt {
	case css.WhitespaceToken, css.CommentToken:
		return

	case css.FunctionToken, css.LeftParenthesisToken:
		s.parenDepth++
		if s.currentProp != "" {
			s.valueTokens++
		}
		return

	case css.RightParenthesisToken:
		if s.parenDepth > 0 {
			s.parenDepth--
		}
		return

	case css.ColonToken:
		if s.depth > 0 && s.currentProp != "" {
			// Separator between property and value; value tokens follow.
			return
		}

	case css.IdentToken:
		name := string(text)
		if s.depth == 0 {
			if name == "root" {
				s.sawRoot = true
			} else {
				s.add(SeverityWarning, "unexpected selector ident %q, expected :root", name)
			}
			return
		}
		if s.currentProp == "" {
			s.add(SeverityError, "declaration %q is not a custom property", name)
			s.currentProp = name
			return
		}
		s.valueTokens++

	case css.CustomPropertyNameToken:
		if s.parenDepth > 0 {
			// var(--x) argument, part of the current value.
			if s.currentProp != "" {
				s.valueTokens++
			}
			return
		}
		s.flushDeclaration(false)
		name := string(text)
		if s.depth == 0 {
			s.add(SeverityError, "custom property %q outside a block", name)
			return
		}
		if s.seenProps[name] {
			s.add(SeverityWarning, "duplicate custom property %q", name)
		}
		s.seenProps[name] = true
		s.currentProp = name

	case css.LeftBraceToken:
		s.depth++
		if s.depth > 1 {
			s.add(SeverityError, "nested block is not valid in a custom-properties export")
		}

	case css.RightBraceToken:
		s.flushDeclaration(true)
		if s.depth == 0 {
			s.add(SeverityError, "unbalanced closing brace")
			return
		}
		s.depth--

	case css.SemicolonToken:
		s.flushDeclaration(false)

	case css.HashToken:
		if s.currentProp != "" {
			if !isHexColor(string(text)) {
				s.add(SeverityError, "custom property %q has invalid hex color %q", s.currentProp, string(text))
			}
			s.valueTokens++
		}

	default:
		if s.depth > 0 && s.currentProp != "" {
			s.valueTokens++
		}
	}
}

// flushDeclaration closes the pending declaration. atBoundary marks a
// block edge where a missing semicolon is tolerated by CSS but not by
// our own renderer.
func (s *checkerState) flushDeclaration(atBoundary bool) {
	if s.currentProp == "" {
		return
	}
	if s.valueTokens == 0 {
		s.add(SeverityError, "custom property %q has no value", s.currentProp)
	} else if atBoundary {
		s.add(SeverityWarning, "declaration %q missing trailing semicolon", s.currentProp)
	}
	s.currentProp = ""
	s.valueTokens = 0
}

// isHexColor accepts #RGB, #RRGGBB, and #RRGGBBAA hash tokens.
func isHexColor(hash string) bool {
	digits := strings.TrimPrefix(hash, "#")
	switch len(digits) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, ch := range digits {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
