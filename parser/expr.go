package parser

import (
	"strconv"

	"github.com/quietloop/serpent/ast"
	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/token"
)

// parseExpr is the entry point for expression parsing: comparison binds
// loosest (and does not chain), then +/-, then */, then
// unary, then postfix (call/attr/index), then atoms.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseComparison()
}

var compareOps = map[token.Type]string{
	token.EQ:     "==",
	token.NOT_EQ: "!=",
	token.LT:     "<",
	token.LE:     "<=",
	token.GT:     ">",
	token.GE:     ">=",
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if opStr, ok := compareOps[p.peekType()]; ok {
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &ast.Compare{Op: opStr, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.at(token.PLUS) || p.at(token.MINUS) {
		opTok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: string(opTok.Type), Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.at(token.ASTERISK) || p.at(token.SLASH) {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: string(opTok.Type), Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.at(token.MINUS) || p.at(token.PLUS) {
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: string(opTok.Type), Operand: operand}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peekType() {
		case token.DOT:
			p.advance()
			nameTok, err := p.expect(token.NAME)
			if err != nil {
				return nil, err
			}
			expr = &ast.Attribute{Obj: expr, Name: nameTok.Literal}
		case token.LBRACKET:
			p.advance()
			key, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.Index{Obj: expr, Key: key}
		case token.LPAREN:
			p.advance()
			var args []ast.Expr
			for !p.at(token.RPAREN) {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.at(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
			if _, err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			expr = &ast.Call{Callee: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case token.INT:
		p.advance()
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, errors.Syntaxf("line %d: invalid integer literal %q", tok.Pos.Line, tok.Literal)
		}
		return &ast.IntLit{Value: v}, nil
	case token.FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, errors.Syntaxf("line %d: invalid float literal %q", tok.Pos.Line, tok.Literal)
		}
		return &ast.FloatLit{Value: v}, nil
	case token.STRING:
		p.advance()
		return &ast.StrLit{Value: tok.Literal}, nil
	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true}, nil
	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false}, nil
	case token.NONE:
		p.advance()
		return &ast.NoneLit{}, nil
	case token.NAME:
		p.advance()
		return &ast.NameExpr{Name: tok.Literal}, nil
	case token.LPAREN:
		return p.parseParenOrTuple()
	case token.LBRACKET:
		return p.parseListLit()
	case token.LBRACE:
		return p.parseDictOrSetLit()
	default:
		return nil, errors.Syntaxf("line %d: unexpected token %s %q", tok.Pos.Line, tok.Type, tok.Literal)
	}
}

// parseParenOrTuple disambiguates a grouping expression `(expr)` from a
// tuple literal `(e1, e2, ...)` or the one-element tuple form `(e,)`.
func (p *Parser) parseParenOrTuple() (ast.Expr, error) {
	p.advance() // '('
	if p.at(token.RPAREN) {
		p.advance()
		return &ast.TupleLit{}, nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.at(token.COMMA) {
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return first, nil
	}
	elems := []ast.Expr{first}
	for p.at(token.COMMA) {
		p.advance()
		if p.at(token.RPAREN) {
			break
		}
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.TupleLit{Elems: elems}, nil
}

func (p *Parser) parseListLit() (ast.Expr, error) {
	p.advance() // '['
	var elems []ast.Expr
	for !p.at(token.RBRACKET) {
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ListLit{Elems: elems}, nil
}

// parseDictOrSetLit disambiguates `{}`/`{k: v, ...}` (dict) from
// `{e, e, ...}` (set) by checking for a colon after the first element.
func (p *Parser) parseDictOrSetLit() (ast.Expr, error) {
	p.advance() // '{'
	if p.at(token.RBRACE) {
		p.advance()
		return &ast.DictLit{}, nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.at(token.COLON) {
		p.advance()
		firstVal, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		keys := []ast.Expr{first}
		values := []ast.Expr{firstVal}
		for p.at(token.COMMA) {
			p.advance()
			if p.at(token.RBRACE) {
				break
			}
			k, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.COLON); err != nil {
				return nil, err
			}
			v, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
			values = append(values, v)
		}
		if _, err := p.expect(token.RBRACE); err != nil {
			return nil, err
		}
		return &ast.DictLit{Keys: keys, Values: values}, nil
	}
	elems := []ast.Expr{first}
	for p.at(token.COMMA) {
		p.advance()
		if p.at(token.RBRACE) {
			break
		}
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.SetLit{Elems: elems}, nil
}
