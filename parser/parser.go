// Package parser turns a token stream into the ast.Module the compiler
// lowers. The grammar accepted here is exactly the subset the compiler
// handles: single-target assignment,
// if/elif/else, while, for-in over a bare name, break/continue,
// function/class definitions with positional parameters only, return,
// the three import forms, and the listed expression forms. Anything from
// the Non-goals list (comprehensions, slicing, decorators, multiple
// assignment, keyword/default/variadic arguments, chained comparisons) is
// a parse error.
package parser

import (
	"github.com/quietloop/serpent/ast"
	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/lexer"
	"github.com/quietloop/serpent/token"
)

// Parser is a recursive-descent parser over a pre-lexed token slice.
type Parser struct {
	tokens []token.Token
	pos    int
}

// Parse lexes and parses a complete source file into a Module.
func Parse(source string) (*ast.Module, error) {
	toks, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: toks}
	return p.parseModule()
}

func (p *Parser) cur() token.Token { return p.tokens[p.pos] }
func (p *Parser) peekType() token.Type {
	return p.cur().Type
}

func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(t token.Type) bool { return p.peekType() == t }

func (p *Parser) expect(t token.Type) (token.Token, error) {
	if !p.at(t) {
		return token.Token{}, errors.Syntaxf("line %d: expected %s, got %s %q",
			p.cur().Pos.Line, t, p.cur().Type, p.cur().Literal)
	}
	return p.advance(), nil
}

// skipNewlines consumes any run of blank NEWLINE tokens, used between
// statements and before EOF/DEDENT.
func (p *Parser) skipNewlines() {
	for p.at(token.NEWLINE) {
		p.advance()
	}
}

func (p *Parser) parseModule() (*ast.Module, error) {
	mod := &ast.Module{}
	p.skipNewlines()
	for !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		mod.Statements = append(mod.Statements, stmt)
		p.skipNewlines()
	}
	return mod, nil
}

// parseBlock consumes ':' NEWLINE INDENT Statement+ DEDENT.
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.NEWLINE); err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}
	var body []ast.Statement
	p.skipNewlines()
	for !p.at(token.DEDENT) && !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		p.skipNewlines()
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.peekType() {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.DEF:
		return p.parseFunctionDef()
	case token.CLASS:
		return p.parseClassDef()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		p.advance()
		return p.finishSimple(&ast.Break{})
	case token.CONTINUE:
		p.advance()
		return p.finishSimple(&ast.Continue{})
	case token.IMPORT:
		return p.parseImport()
	case token.FROM:
		return p.parseImportFrom()
	default:
		return p.parseAssignOrExpr()
	}
}

// finishSimple consumes the trailing NEWLINE that ends a simple statement.
func (p *Parser) finishSimple(stmt ast.Statement) (ast.Statement, error) {
	if p.at(token.NEWLINE) {
		p.advance()
	} else if !p.at(token.EOF) && !p.at(token.DEDENT) {
		return nil, errors.Syntaxf("line %d: expected end of statement, got %s", p.cur().Pos.Line, p.cur().Type)
	}
	return stmt, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	node := &ast.If{}
	p.advance() // 'if'
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Tests = append(node.Tests, test)
	node.Bodies = append(node.Bodies, body)
	for p.at(token.ELIF) {
		p.advance()
		test, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Tests = append(node.Tests, test)
		node.Bodies = append(node.Bodies, body)
	}
	if p.at(token.ELSE) {
		p.advance()
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = body
	}
	return node, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	p.advance() // 'while'
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Test: test, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	p.advance() // 'for'
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Var: nameTok.Literal, Iter: iter, Body: body}, nil
}

func (p *Parser) parseFunctionDef() (ast.Statement, error) {
	p.advance() // 'def'
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	for !p.at(token.RPAREN) {
		pt, err := p.expect(token.NAME)
		if err != nil {
			return nil, err
		}
		params = append(params, pt.Literal)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDef{Name: nameTok.Literal, Params: params, Body: body}, nil
}

func (p *Parser) parseClassDef() (ast.Statement, error) {
	p.advance() // 'class'
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ClassDef{Name: nameTok.Literal, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	p.advance() // 'return'
	if p.at(token.NEWLINE) || p.at(token.EOF) || p.at(token.DEDENT) {
		return p.finishSimple(&ast.Return{Value: &ast.NoneLit{}})
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return p.finishSimple(&ast.Return{Value: val})
}

func (p *Parser) parseImport() (ast.Statement, error) {
	p.advance() // 'import'
	nameTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	return p.finishSimple(&ast.Import{Name: nameTok.Literal})
}

func (p *Parser) parseImportFrom() (ast.Statement, error) {
	p.advance() // 'from'
	moduleTok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.IMPORT); err != nil {
		return nil, err
	}
	if p.at(token.ASTERISK) {
		p.advance()
		return p.finishSimple(&ast.ImportStar{Name: moduleTok.Literal})
	}
	var names []string
	for {
		nt, err := p.expect(token.NAME)
		if err != nil {
			return nil, err
		}
		names = append(names, nt.Literal)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return p.finishSimple(&ast.ImportFrom{Module: moduleTok.Literal, Names: names})
}

func (p *Parser) parseAssignOrExpr() (ast.Statement, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.at(token.ASSIGN) {
		switch expr.(type) {
		case *ast.NameExpr, *ast.Index, *ast.Attribute:
		default:
			return nil, errors.Syntaxf("line %d: invalid assignment target", p.cur().Pos.Line)
		}
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.finishSimple(&ast.Assign{Target: expr, Value: value})
	}
	return p.finishSimple(&ast.ExprStmt{Expr: expr})
}
