// Package lexer tokenizes the indentation-structured source text into the
// token stream the parser consumes.
// Indentation is turned into explicit INDENT/DEDENT tokens the way Python's
// tokenizer does, so the parser itself never has to reason about columns.
package lexer

import (
	"strings"

	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/token"
)

// Lexer scans one source file into a slice of tokens, tracking an
// indentation stack to synthesize INDENT/DEDENT tokens at the start of
// each logical line.
type Lexer struct {
	input       []rune
	pos         int
	line        int
	col         int
	indents     []int
	pending     []token.Token
	atLineStart bool
	parenDepth  int
}

func New(input string) *Lexer {
	return &Lexer{
		input:       []rune(input),
		line:        1,
		col:         1,
		indents:     []int{0},
		atLineStart: true,
	}
}

// Tokenize scans the whole input and returns its token stream, terminated
// by a single EOF token.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens, nil
}

func (l *Lexer) peekRune() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekAt(off int) rune {
	if l.pos+off >= len(l.input) {
		return 0
	}
	return l.input[l.pos+off]
}

func (l *Lexer) advance() rune {
	r := l.input[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) pos2() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

func (l *Lexer) next() (token.Token, error) {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, nil
	}
	if l.atLineStart && l.parenDepth == 0 {
		if tok, ok, err := l.scanIndentation(); err != nil {
			return token.Token{}, err
		} else if ok {
			return tok, nil
		}
	}
	l.skipSpacesAndComments()

	if l.pos >= len(l.input) {
		if len(l.indents) > 1 {
			l.indents = l.indents[:len(l.indents)-1]
			return token.Token{Type: token.DEDENT, Pos: l.pos2()}, nil
		}
		return token.Token{Type: token.EOF, Pos: l.pos2()}, nil
	}

	r := l.peekRune()

	if r == '\n' {
		l.advance()
		if l.parenDepth > 0 {
			return l.next()
		}
		l.atLineStart = true
		return token.Token{Type: token.NEWLINE, Literal: "\n", Pos: l.pos2()}, nil
	}

	if isDigit(r) {
		return l.scanNumber(), nil
	}
	if isNameStart(r) {
		return l.scanName(), nil
	}
	if r == '"' || r == '\'' {
		return l.scanString(r)
	}

	return l.scanOperator()
}

// scanIndentation is called only at the start of a logical line (outside
// any bracket nesting). It consumes leading whitespace, skips blank/
// comment-only lines without emitting INDENT/DEDENT, and otherwise
// compares the new indentation width against the top of the indent stack.
func (l *Lexer) scanIndentation() (token.Token, bool, error) {
	for {
		width := 0
		for l.pos < len(l.input) && (l.peekRune() == ' ' || l.peekRune() == '\t') {
			width++
			l.advance()
		}
		if l.pos >= len(l.input) {
			l.atLineStart = false
			break
		}
		if l.peekRune() == '\n' || l.peekRune() == '#' {
			// Blank or comment-only line: consume it and keep scanning for
			// the next logical line's indentation.
			for l.pos < len(l.input) && l.peekRune() != '\n' {
				l.advance()
			}
			if l.pos < len(l.input) {
				l.advance()
			}
			continue
		}
		l.atLineStart = false
		top := l.indents[len(l.indents)-1]
		if width > top {
			l.indents = append(l.indents, width)
			return token.Token{Type: token.INDENT, Pos: l.pos2()}, true, nil
		}
		if width < top {
			// A single line can close several nested blocks at once;
			// queue one DEDENT per closed level and hand them out one
			// token at a time.
			for len(l.indents) > 1 && width < l.indents[len(l.indents)-1] {
				l.indents = l.indents[:len(l.indents)-1]
				l.pending = append(l.pending, token.Token{Type: token.DEDENT, Pos: l.pos2()})
			}
			if width != l.indents[len(l.indents)-1] {
				return token.Token{}, false, errors.Syntaxf("unindent does not match any outer indentation level")
			}
			first := l.pending[0]
			l.pending = l.pending[1:]
			return first, true, nil
		}
		break
	}
	return token.Token{}, false, nil
}

func (l *Lexer) skipSpacesAndComments() {
	for l.pos < len(l.input) {
		r := l.peekRune()
		if r == ' ' || r == '\t' || r == '\r' {
			l.advance()
			continue
		}
		if r == '#' {
			for l.pos < len(l.input) && l.peekRune() != '\n' {
				l.advance()
			}
			continue
		}
		break
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameCont(r rune) bool {
	return isNameStart(r) || isDigit(r)
}

func (l *Lexer) scanNumber() token.Token {
	pos := l.pos2()
	start := l.pos
	isFloat := false
	for l.pos < len(l.input) && isDigit(l.peekRune()) {
		l.advance()
	}
	if l.peekRune() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		l.advance()
		for l.pos < len(l.input) && isDigit(l.peekRune()) {
			l.advance()
		}
	}
	lit := string(l.input[start:l.pos])
	typ := token.INT
	if isFloat {
		typ = token.FLOAT
	}
	return token.Token{Type: typ, Literal: lit, Pos: pos}
}

func (l *Lexer) scanName() token.Token {
	pos := l.pos2()
	start := l.pos
	for l.pos < len(l.input) && isNameCont(l.peekRune()) {
		l.advance()
	}
	lit := string(l.input[start:l.pos])
	return token.Token{Type: token.LookupName(lit), Literal: lit, Pos: pos}
}

func (l *Lexer) scanString(quote rune) (token.Token, error) {
	pos := l.pos2()
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.pos >= len(l.input) {
			return token.Token{}, errors.Syntaxf("unterminated string literal")
		}
		r := l.peekRune()
		if r == quote {
			l.advance()
			break
		}
		if r == '\n' {
			return token.Token{}, errors.Syntaxf("unterminated string literal")
		}
		if r == '\\' {
			l.advance()
			if l.pos >= len(l.input) {
				return token.Token{}, errors.Syntaxf("unterminated string literal")
			}
			esc := l.peekRune()
			switch esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case '\\':
				sb.WriteRune('\\')
			case '"':
				sb.WriteRune('"')
			case '\'':
				sb.WriteRune('\'')
			default:
				sb.WriteRune(esc)
			}
			l.advance()
			continue
		}
		sb.WriteRune(r)
		l.advance()
	}
	return token.Token{Type: token.STRING, Literal: sb.String(), Pos: pos}, nil
}

func (l *Lexer) scanOperator() (token.Token, error) {
	pos := l.pos2()
	r := l.advance()
	two := func(next rune, twoType, oneType token.Type) token.Token {
		if l.peekRune() == next {
			l.advance()
			return token.Token{Type: twoType, Literal: string(r) + string(next), Pos: pos}
		}
		return token.Token{Type: oneType, Literal: string(r), Pos: pos}
	}
	switch r {
	case '=':
		return two('=', token.EQ, token.ASSIGN), nil
	case '!':
		if l.peekRune() == '=' {
			l.advance()
			return token.Token{Type: token.NOT_EQ, Literal: "!=", Pos: pos}, nil
		}
		return token.Token{}, errors.Syntaxf("unexpected character %q", r)
	case '<':
		return two('=', token.LE, token.LT), nil
	case '>':
		return two('=', token.GE, token.GT), nil
	case '+':
		return token.Token{Type: token.PLUS, Literal: "+", Pos: pos}, nil
	case '-':
		return token.Token{Type: token.MINUS, Literal: "-", Pos: pos}, nil
	case '*':
		return token.Token{Type: token.ASTERISK, Literal: "*", Pos: pos}, nil
	case '/':
		return token.Token{Type: token.SLASH, Literal: "/", Pos: pos}, nil
	case '(':
		l.parenDepth++
		return token.Token{Type: token.LPAREN, Literal: "(", Pos: pos}, nil
	case ')':
		l.parenDepth--
		return token.Token{Type: token.RPAREN, Literal: ")", Pos: pos}, nil
	case '[':
		l.parenDepth++
		return token.Token{Type: token.LBRACKET, Literal: "[", Pos: pos}, nil
	case ']':
		l.parenDepth--
		return token.Token{Type: token.RBRACKET, Literal: "]", Pos: pos}, nil
	case '{':
		l.parenDepth++
		return token.Token{Type: token.LBRACE, Literal: "{", Pos: pos}, nil
	case '}':
		l.parenDepth--
		return token.Token{Type: token.RBRACE, Literal: "}", Pos: pos}, nil
	case ',':
		return token.Token{Type: token.COMMA, Literal: ",", Pos: pos}, nil
	case ':':
		return token.Token{Type: token.COLON, Literal: ":", Pos: pos}, nil
	case '.':
		return token.Token{Type: token.DOT, Literal: ".", Pos: pos}, nil
	default:
		return token.Token{}, errors.Syntaxf("unexpected character %q", r)
	}
}
