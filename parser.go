// parser.go — recursive-descent parser for NabeelScript.
//
// The parser consumes the materialized token sequence from lexer.go and
// produces the program as a flat []Stmt (see ast.go). Statement dispatch is
// fixed: a leading `print` keyword opens a print statement, a leading
// identifier must be followed by `=` and opens an assignment, and anything
// else is a parse error — the language has no bare expression statements.
// Every statement requires a terminating ';'.
//
// Expressions use precedence climbing over an explicit binding-power table
// (lbp), lowest to highest:
//
//	"||" < "&&" < "==" "!=" < "<" ">" "<=" ">=" < "+" "-" < "*" "/"
//
// All binary operators are left-associative. Prefix "!" and "-" bind tighter
// than any binary operator; postfix indexing `expr[expr]` binds tighter still
// and chains left-associatively. A call `name(args...)` is recognized only
// when the '(' immediately follows the identifier (no whitespace between),
// so `print count (xs);` stays a parse error rather than a surprise call.
//
// Interactive mode (ParseInteractive) marks errors caused by input simply
// ending — rather than by a wrong token — as incomplete, which the REPL uses
// to prompt for continuation lines.
package nabeelscript

import "fmt"

////////////////////////////////////////////////////////////////////////////////
//                                  PUBLIC API
////////////////////////////////////////////////////////////////////////////////

// Parse lexes and parses a complete NabeelScript source string.
func Parse(src string) ([]Stmt, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.program()
}

// ParseInteractive parses in REPL-friendly mode. Constructs left unterminated
// at end of input produce errors for which IsIncomplete reports true.
func ParseInteractive(src string) ([]Stmt, error) {
	toks, err := NewLexerInteractive(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, interactive: true}
	return p.program()
}

// ParseError reports a syntax failure at a 1-based line and 0-based column.
type ParseError struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// IsIncomplete reports whether err is a lex or parse error caused by input
// ending mid-construct (interactive mode only).
func IsIncomplete(err error) bool {
	switch e := err.(type) {
	case *LexError:
		return e.Incomplete
	case *ParseError:
		return e.Incomplete
	}
	return false
}

//// END_OF_PUBLIC

////////////////////////////////////////////////////////////////////////////////
///////////////////////////// PRIVATE IMPLEMENTATION ///////////////////////////
////////////////////////////////////////////////////////////////////////////////

type parser struct {
	toks        []Token
	i           int
	interactive bool
}

// ─────────────────────────── token basics & helpers ─────────────────────────

func (p *parser) atEnd() bool { return p.peek().Type == EOF }
func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}
func (p *parser) peekNext() Token {
	if p.i+1 >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i+1]
}
func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) match(tt ...TokenType) bool {
	if p.atEnd() {
		return false
	}
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(t TokenType, msg string) (Token, error) {
	if p.match(t) {
		return p.prev(), nil
	}
	return Token{}, p.errAt(p.peek(), fmt.Sprintf("%s, found %s", msg, describe(p.peek())))
}

func (p *parser) errAt(tok Token, msg string) *ParseError {
	return &ParseError{
		Line:       tok.Line,
		Col:        tok.Col,
		Msg:        msg,
		Incomplete: p.interactive && tok.Type == EOF,
	}
}

func pos(t Token) Pos { return Pos{Line: t.Line, Col: t.Col} }

// describe renders a token for error messages.
func describe(t Token) string {
	switch t.Type {
	case EOF:
		return "end of input"
	case ID:
		return fmt.Sprintf("identifier %q", t.Lexeme)
	case STRING:
		return "string literal"
	case NUMBER:
		return fmt.Sprintf("number %s", t.Lexeme)
	case BOOLEAN, PRINT:
		return fmt.Sprintf("keyword %q", t.Lexeme)
	default:
		return fmt.Sprintf("%q", t.Lexeme)
	}
}

// adjacent reports whether b starts at the byte right after a ends,
// on the same line. Used to tell a call `count(xs)` from grouping.
func adjacent(a, b Token) bool {
	return a.Line == b.Line && b.Col == a.Col+len(a.Lexeme)
}

// ───────────────────────── precedence / associativity ──────────────────────

func lbp(t TokenType) (int, bool) {
	switch t {
	case OR:
		return 10, true
	case AND:
		return 20, true
	case EQ, NEQ:
		return 30, true
	case LESS, LESS_EQ, GREATER, GREATER_EQ:
		return 40, true
	case PLUS, MINUS:
		return 50, true
	case MULT, DIV:
		return 60, true
	}
	return 0, false
}

// ───────────────────────────────── grammar ──────────────────────────────────

func (p *parser) program() ([]Stmt, error) {
	var out []Stmt
	for !p.atEnd() {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (p *parser) statement() (Stmt, error) {
	switch p.peek().Type {
	case PRINT:
		kw := p.peek()
		p.i++
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(SEMICOLON, "expected ';' after print statement"); err != nil {
			return nil, err
		}
		return &PrintStmt{At: pos(kw), Expr: e}, nil

	case ID:
		name := p.peek()
		p.i++
		if _, err := p.need(ASSIGN, fmt.Sprintf("expected '=' after identifier %q", name.Lexeme)); err != nil {
			return nil, err
		}
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(SEMICOLON, "expected ';' after assignment"); err != nil {
			return nil, err
		}
		return &AssignStmt{At: pos(name), Name: name.Lexeme, Expr: e}, nil
	}

	return nil, p.errAt(p.peek(),
		fmt.Sprintf("expected a statement ('print' or an assignment), found %s", describe(p.peek())))
}

func (p *parser) expression() (Expr, error) { return p.binary(0) }

// binary implements precedence climbing: it keeps folding operators whose
// binding power is at least min, recursing with bp+1 for the right operand
// so equal-precedence operators group to the left.
func (p *parser) binary(min int) (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		bp, ok := lbp(p.peek().Type)
		if !ok || bp < min {
			return left, nil
		}
		op := p.peek()
		p.i++
		right, err := p.binary(bp + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{At: pos(op), Op: op.Type, Left: left, Right: right}
	}
}

func (p *parser) unary() (Expr, error) {
	if p.match(BANG, MINUS) {
		op := p.prev()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{At: pos(op), Op: op.Type, Operand: operand}, nil
	}
	return p.postfix()
}

func (p *parser) postfix() (Expr, error) {
	e, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == LSQUARE {
		lsq := p.peek()
		p.i++
		idx, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RSQUARE, "expected ']' after index expression"); err != nil {
			return nil, err
		}
		e = &IndexExpr{At: pos(lsq), Base: e, Index: idx}
	}
	return e, nil
}

func (p *parser) primary() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case NUMBER:
		p.i++
		return &NumberLit{At: pos(tok), Value: tok.Literal.(float64)}, nil

	case STRING:
		p.i++
		return &StringLit{At: pos(tok), Value: tok.Literal.(string)}, nil

	case BOOLEAN:
		p.i++
		return &BoolLit{At: pos(tok), Value: tok.Literal.(bool)}, nil

	case ID:
		if p.peekNext().Type == LROUND && adjacent(tok, p.peekNext()) {
			return p.call()
		}
		p.i++
		return &VarRef{At: pos(tok), Name: tok.Literal.(string)}, nil

	case LROUND:
		p.i++
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RROUND, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return e, nil

	case LSQUARE:
		return p.arrayLiteral()
	}

	return nil, p.errAt(tok, fmt.Sprintf("expected an expression, found %s", describe(tok)))
}

func (p *parser) call() (Expr, error) {
	name := p.peek()
	p.i++ // identifier
	p.i++ // "("
	var args []Expr
	if p.peek().Type != RROUND {
		for {
			a, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RROUND, fmt.Sprintf("expected ')' after arguments to %q", name.Lexeme)); err != nil {
		return nil, err
	}
	return &CallExpr{At: pos(name), Name: name.Literal.(string), Args: args}, nil
}

func (p *parser) arrayLiteral() (Expr, error) {
	lsq := p.peek()
	p.i++ // "["
	var elems []Expr
	if p.peek().Type != RSQUARE {
		for {
			e, err := p.expression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RSQUARE, "expected ']' after array elements"); err != nil {
		return nil, err
	}
	return &ArrayLit{At: pos(lsq), Elems: elems}, nil
}
