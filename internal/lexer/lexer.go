// Package lexer turns basis source bytes into a token list, computing
// each token's indentation bound inline as it scans.
//
// The lexer is byte-oriented and ASCII-centric by design: the language
// is not Unicode-aware. Columns count one per byte, except that a tab
// advances tabWidth columns and other control bytes advance none, which
// keeps diagnostics simple and reproducible.
package lexer

import (
	"strings"

	"github.com/basis-lang/basis/internal/diag"
	"github.com/basis-lang/basis/internal/token"
)

// Option configures the lexer. Options are passed to Scan or Trace and
// applied before scanning begins.
type Option func(*lexer)

// WithTabWidth sets how many columns a tab character advances. Default 4.
func WithTabWidth(n int) Option {
	return func(l *lexer) {
		if n > 0 {
			l.tabWidth = n
		}
	}
}

// WithTracing enables debug tracing of token emission to an internal
// buffer retrievable via Trace. Has no effect on the token list produced.
func WithTracing(trace bool) Option {
	return func(l *lexer) {
		l.tracing = trace
	}
}

type lexer struct {
	input    string
	pos      int
	line     int
	column   int
	tabWidth int
	tracing  bool

	tokens []*token.Token
	// indents holds pending tokens ordered by strictly decreasing column;
	// it is the sole mechanism that assigns Token.Bound.
	indents []*token.Token
	trace   []string
}

// Scan tokenizes input in a single O(n) pass, computing bounds as it
// goes, and returns the resulting token list. On any malformed token it
// aborts immediately and returns a *diag.LexError describing where; no
// partial token list is returned to the caller.
func Scan(input string, opts ...Option) ([]*token.Token, error) {
	l := newLexer(input, opts...)
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func newLexer(input string, opts ...Option) *lexer {
	l := &lexer{input: input, line: 1, column: 0, tabWidth: 4}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lexer) run() error {
	for l.pos < len(l.input) {
		c := l.input[l.pos]

		if c == '\n' {
			l.pos++
			l.line++
			l.column = 0
			continue
		}
		if c == '\t' {
			l.column += l.tabWidth
			l.pos++
			continue
		}
		if isSpace(c) {
			l.column++
			l.pos++
			continue
		}
		if isControl(c) {
			l.pos++
			continue
		}
		if c == ';' {
			l.drainLine()
			continue
		}

		startLine, startCol := l.line, l.column+1

		switch {
		case c == '0' && l.peekIs(1, 'x'):
			if err := l.scanHex(startLine, startCol); err != nil {
				return err
			}
		case isDigit(c):
			if err := l.scanNumber(startLine, startCol); err != nil {
				return err
			}
		case isAlpha(c) || (c == '\'' && l.peekIsAlpha(1)):
			l.scanIdentifier(startLine, startCol)
		case c == '.' && l.peekIsAlpha(1):
			if err := l.scanReservedWord(startLine, startCol); err != nil {
				return err
			}
		case c == '"':
			if err := l.scanString(startLine, startCol); err != nil {
				return err
			}
		default:
			if !l.scanPunctuation(startLine, startCol) {
				return &diag.LexError{
					Pos:     token.Position{Line: startLine, Column: startCol},
					Message: "unrecognized character",
				}
			}
		}
	}
	return nil
}

// emit appends tok to the token list and folds it into the bound
// computation: every pending token whose column is >= tok's column is
// popped and bound to tok, then tok is pushed.
func (l *lexer) emit(tok *token.Token) {
	l.tokens = append(l.tokens, tok)
	for len(l.indents) > 0 && l.indents[len(l.indents)-1].Pos.Column >= tok.Pos.Column {
		l.indents[len(l.indents)-1].Bound = tok
		l.indents = l.indents[:len(l.indents)-1]
	}
	l.indents = append(l.indents, tok)
	if l.tracing {
		l.trace = append(l.trace, tok.String())
	}
}

func (l *lexer) peekIs(offset int, want byte) bool {
	i := l.pos + offset
	return i < len(l.input) && l.input[i] == want
}

func (l *lexer) peekIsAlpha(offset int) bool {
	i := l.pos + offset
	return i < len(l.input) && isAlpha(l.input[i])
}

func (l *lexer) drainLine() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
}

func (l *lexer) advance(n int) {
	l.pos += n
	l.column += n
}

func isSpace(c byte) bool   { return c == ' ' || c == '\r' || c == '\v' || c == '\f' }
func isControl(c byte) bool { return c < 0x20 && c != '\n' && c != '\t' }
func isDigit(c byte) bool   { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

func (l *lexer) scanHex(line, col int) error {
	l.advance(2) // "0x"
	start := l.pos
	for l.pos < len(l.input) && isHexDigit(l.input[l.pos]) {
		l.advance(1)
	}
	digits := l.input[start:l.pos]
	if len(digits) == 0 || len(digits)%2 != 0 {
		return &diag.LexError{Pos: token.Position{Line: line, Column: col}, Message: "invalid hex value"}
	}
	l.emit(&token.Token{Kind: token.HEX, Text: digits, Pos: token.Position{Line: line, Column: col}})
	return nil
}

func (l *lexer) scanNumber(line, col int) error {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.advance(1)
	}
	kind := token.NUMBER
	if l.pos < len(l.input) && l.input[l.pos] == '.' && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]) {
		kind = token.DECIMAL
		l.advance(1) // '.'
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.advance(1)
		}
	}
	if l.pos < len(l.input) && (l.input[l.pos] == '.' || isAlpha(l.input[l.pos])) {
		return &diag.LexError{Pos: token.Position{Line: line, Column: col}, Message: "invalid number"}
	}
	l.emit(&token.Token{Kind: kind, Text: l.input[start:l.pos], Pos: token.Position{Line: line, Column: col}})
	return nil
}

func (l *lexer) scanIdentifier(line, col int) {
	start := l.pos
	if l.input[l.pos] == '\'' {
		l.advance(1)
	}
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.advance(1)
	}
	text := l.input[start:l.pos]
	kind := token.IDENTIFIER
	firstLetter := text[0]
	if firstLetter == '\'' && len(text) > 1 {
		firstLetter = text[1]
	}
	if firstLetter >= 'A' && firstLetter <= 'Z' {
		kind = token.TYPENAME
	}
	l.emit(&token.Token{Kind: kind, Text: text, Pos: token.Position{Line: line, Column: col}})
}

func (l *lexer) scanReservedWord(line, col int) error {
	start := l.pos
	l.advance(1) // '.'
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.advance(1)
	}
	text := l.input[start:l.pos]
	kind, ok := token.ReservedWords[text]
	if !ok {
		return &diag.LexError{Pos: token.Position{Line: line, Column: col}, Message: "invalid reserved word"}
	}
	l.emit(&token.Token{Kind: kind, Text: text, Pos: token.Position{Line: line, Column: col}})
	return nil
}

func (l *lexer) scanString(line, col int) error {
	l.advance(1) // opening quote
	var sb strings.Builder
	for {
		if l.pos >= len(l.input) {
			return &diag.LexError{Pos: token.Position{Line: line, Column: col}, Message: "invalid string"}
		}
		c := l.input[l.pos]
		if c == '\n' {
			return &diag.LexError{Pos: token.Position{Line: line, Column: col}, Message: "invalid string"}
		}
		if c == '"' {
			l.advance(1)
			break
		}
		if c == '\\' {
			l.advance(1)
			if l.pos >= len(l.input) {
				return &diag.LexError{Pos: token.Position{Line: line, Column: col}, Message: "invalid string"}
			}
			esc := l.input[l.pos]
			if !isAlpha(esc) && esc != '\\' {
				return &diag.LexError{Pos: token.Position{Line: line, Column: col}, Message: "invalid string"}
			}
			sb.WriteByte('\\')
			sb.WriteByte(esc)
			l.advance(1)
			continue
		}
		sb.WriteByte(c)
		l.advance(1)
	}
	l.emit(&token.Token{Kind: token.STRING, Text: sb.String(), Pos: token.Position{Line: line, Column: col}})
	return nil
}

func (l *lexer) scanPunctuation(line, col int) bool {
	for _, p := range token.Punctuation {
		if strings.HasPrefix(l.input[l.pos:], p.Text) {
			l.advance(len(p.Text))
			l.emit(&token.Token{Kind: p.Kind, Text: p.Text, Pos: token.Position{Line: line, Column: col}})
			return true
		}
	}
	return false
}

// Trace scans input with tracing enabled and returns the token emission
// log. A debugging aid; not used by the production pipeline.
func Trace(input string, opts ...Option) []string {
	opts = append(opts, WithTracing(true))
	l := newLexer(input, opts...)
	_ = l.run()
	return l.trace
}
