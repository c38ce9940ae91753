// lexer.go — single-pass scanner for NabeelScript source.
//
// The lexer walks the source byte by byte and materializes the full token
// sequence before parsing begins (no streaming). Multi-character operators
// ("==", "!=", "<=", ">=", "&&", "||") are matched longest-first before the
// single-character fallbacks. "//" starts a comment that runs to end of line;
// comments and whitespace produce no tokens. String literals are delimited by
// double quotes and take their characters verbatim (no escape processing).
// Identifiers are scanned longest-match and then classified against the
// keyword table (true/false/print).
//
// Positions: Line is 1-based, Col is 0-based. errors.go renders columns as
// 1-based for humans.
package nabeelscript

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Punctuation
	LROUND    // "("
	RROUND    // ")"
	LSQUARE   // "["
	RSQUARE   // "]"
	COMMA     // ","
	SEMICOLON // ";"

	// Operators
	PLUS
	MINUS
	MULT
	DIV
	ASSIGN // "="
	EQ     // "=="
	NEQ    // "!="
	LESS
	LESS_EQ
	GREATER
	GREATER_EQ
	AND  // "&&"
	OR   // "||"
	BANG // "!"

	// Literals & identifiers
	ID
	STRING
	NUMBER
	BOOLEAN

	// Keywords
	PRINT
)

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // parsed value for literals (float64, string, bool)
	Line    int
	Col     int
}

var keywords = map[string]TokenType{
	"true":  BOOLEAN,
	"false": BOOLEAN,
	"print": PRINT,
}

// Lexer scans a NabeelScript source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int

	// interactive mode: an unterminated string at end of input is reported
	// as incomplete rather than as a hard error (REPL continuation).
	interactive bool
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 0}
}

// NewLexerInteractive creates a lexer whose end-of-input failures are marked
// incomplete, for REPL-style line continuation.
func NewLexerInteractive(src string) *Lexer {
	l := NewLexer(src)
	l.interactive = true
	return l
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) Token {
	tok := Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

// match consumes the next byte if it equals want.
func (l *Lexer) match(want byte) bool {
	if b, ok := l.peek(); ok && b == want {
		l.advance()
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// ----- errors -----

// LexError reports a lexical failure at a 1-based line and 0-based column.
// Incomplete is set only in interactive mode when the failure is caused by
// input ending mid-token (unterminated string).
type LexError struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: msg}
}

func (l *Lexer) errAtEnd(msg string) error {
	return &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: msg, Incomplete: l.interactive}
}

// ----- scanners -----

// scanString reads the characters between double quotes verbatim. The opening
// quote has already been consumed. There is no escape processing: every byte
// up to the closing quote, newlines included, lands in the literal.
func (l *Lexer) scanString() (string, error) {
	from := l.cur
	for !l.isAtEnd() {
		ch, _ := l.advance()
		if ch == '"' {
			return l.src[from : l.cur-1], nil
		}
	}
	return "", l.errAtEnd("string literal was not terminated")
}

// scanNumber parses a run of digits with at most one decimal point.
func (l *Lexer) scanNumber() (float64, error) {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	if b, ok := l.peek(); ok && b == '.' {
		l.advance()
		for {
			b, ok := l.peek()
			if !ok || !isDigit(b) {
				break
			}
			l.advance()
		}
	}
	v, convErr := strconv.ParseFloat(l.src[l.start:l.cur], 64)
	if convErr != nil {
		return 0, l.err("invalid number literal")
	}
	return v, nil
}

// scanIdentifier parses [A-Za-z_][A-Za-z0-9_]*
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

func (l *Lexer) ignoreUntilNewline() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		l.advance()
	}
}

// ----- main scanner -----

func (l *Lexer) scanToken() (Token, error) {
	for {
		l.skipWhitespace()
		l.tokStartLine = l.line
		l.tokStartCol = l.col
		l.start = l.cur

		if l.isAtEnd() {
			return l.addToken(EOF, nil), nil
		}

		ch, _ := l.advance()

		switch ch {
		case '(':
			return l.addToken(LROUND, nil), nil
		case ')':
			return l.addToken(RROUND, nil), nil
		case '[':
			return l.addToken(LSQUARE, nil), nil
		case ']':
			return l.addToken(RSQUARE, nil), nil
		case ',':
			return l.addToken(COMMA, nil), nil
		case ';':
			return l.addToken(SEMICOLON, nil), nil
		case '+':
			return l.addToken(PLUS, nil), nil
		case '-':
			return l.addToken(MINUS, nil), nil
		case '*':
			return l.addToken(MULT, nil), nil
		case '/':
			if l.match('/') {
				l.ignoreUntilNewline()
				l.start = l.cur
				continue
			}
			return l.addToken(DIV, nil), nil
		case '=':
			if l.match('=') {
				return l.addToken(EQ, nil), nil
			}
			return l.addToken(ASSIGN, nil), nil
		case '!':
			if l.match('=') {
				return l.addToken(NEQ, nil), nil
			}
			return l.addToken(BANG, nil), nil
		case '<':
			if l.match('=') {
				return l.addToken(LESS_EQ, nil), nil
			}
			return l.addToken(LESS, nil), nil
		case '>':
			if l.match('=') {
				return l.addToken(GREATER_EQ, nil), nil
			}
			return l.addToken(GREATER, nil), nil
		case '&':
			if l.match('&') {
				return l.addToken(AND, nil), nil
			}
			return Token{}, l.err(`expected "&&"`)
		case '|':
			if l.match('|') {
				return l.addToken(OR, nil), nil
			}
			return Token{}, l.err(`expected "||"`)
		case '"':
			text, err := l.scanString()
			if err != nil {
				return Token{}, err
			}
			return l.addToken(STRING, text), nil
		}

		if isDigit(ch) {
			v, err := l.scanNumber()
			if err != nil {
				return Token{}, err
			}
			return l.addToken(NUMBER, v), nil
		}

		if isAlpha(ch) {
			lex := l.scanIdentifier()
			if tt, ok := keywords[lex]; ok {
				if tt == BOOLEAN {
					return l.addToken(BOOLEAN, lex == "true"), nil
				}
				return l.addToken(tt, nil), nil
			}
			return l.addToken(ID, lex), nil
		}

		return Token{}, l.err(fmt.Sprintf("unexpected character: %q", ch))
	}
}

// Scan tokenizes the entire source and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}
