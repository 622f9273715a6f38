package parser

import (
	"fmt"

	"github.com/boklang/bok/internal/lexer"
	"github.com/boklang/bok/internal/value"
)

// Parser is a one-token-lookahead recursive descent parser over a
// lexer.Lexer.
type Parser struct {
	lex  *lexer.Lexer
	tok  lexer.Token
	have bool
}

// New wraps a lexer for parsing.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

func (p *Parser) peek() (lexer.Token, error) {
	if !p.have {
		tok, err := p.lex.Next()
		if err != nil {
			return lexer.Token{}, err
		}
		p.tok = tok
		p.have = true
	}
	return p.tok, nil
}

func (p *Parser) advance() (lexer.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return lexer.Token{}, err
	}
	p.have = false
	return tok, nil
}

func (p *Parser) errf(tok lexer.Token, format string, args ...interface{}) error {
	return value.ParseError{Pos: tok.Pos.String(), Token: tok.Text, Message: fmt.Sprintf(format, args...)}
}

// ParseProgram parses every top-level statement until EOF.
func (p *Parser) ParseProgram() (*Program, error) {
	var prog Program
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.EOF {
			return &prog, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
}

func (p *Parser) parseStatement() (Node, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case lexer.IMPORT:
		return p.parseImport()
	default:
		return p.parseExpr()
	}
}

func (p *Parser) parseImport() (Node, error) {
	kw, _ := p.advance()
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}
	if tok.Kind != lexer.STRING {
		return nil, p.errf(tok, "expected string path after 'import'")
	}
	return &ImportNode{base: base{kw.Pos}, Path: tok.StringValue}, nil
}

func (p *Parser) parseExpr() (Node, error) {
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case lexer.NUMBER:
		return &NumberNode{base: base{tok.Pos}, IsFloat: tok.IsFloat, IntVal: tok.IntValue, FloatVal: tok.FloatValue}, nil
	case lexer.STRING, lexer.DOCSTRING:
		return &StringNode{base: base{tok.Pos}, Value: tok.StringValue, Affixes: tok.Affixes}, nil
	case lexer.TRUE:
		return &BoolNode{base: base{tok.Pos}, Value: true}, nil
	case lexer.FALSE:
		return &BoolNode{base: base{tok.Pos}, Value: false}, nil
	case lexer.NONE:
		return &NoneNode{base: base{tok.Pos}}, nil
	case lexer.LBRACK:
		return p.parseList(tok)
	case lexer.COLON:
		return &VarNode{base: base{tok.Pos}, Name: tok.Text}, nil
	case lexer.OPERATOR:
		return &OperatorNode{base: base{tok.Pos}, Text: tok.Text}, nil
	case lexer.ARRAY:
		return p.parseArray(tok)
	case lexer.LPAREN:
		return p.parseWord(tok)
	case lexer.IDENT:
		return p.parseIdentOrDot(tok)
	default:
		return nil, p.errf(tok, "unexpected token")
	}
}

// parseWord handles a `( name doc? body... )` definition. It is reached
// through parseExpr since a word form is itself a valid expression,
// letting definitions nest.
func (p *Parser) parseWord(open lexer.Token) (Node, error) {
	nameTok, err := p.advance()
	if err != nil {
		return nil, err
	}
	if nameTok.Kind != lexer.IDENT && nameTok.Kind != lexer.OPERATOR {
		return nil, p.errf(nameTok, "expected word name")
	}
	word := &WordNode{base: base{open.Pos}, Name: nameTok.Text}

	first, err := p.peek()
	if err != nil {
		return nil, err
	}
	if first.Kind == lexer.DOCSTRING {
		p.advance()
		word.Doc = first.StringValue
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.RPAREN {
			p.advance()
			return word, nil
		}
		if tok.Kind == lexer.EOF {
			return nil, p.errf(tok, "unterminated word definition %q", word.Name)
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		word.Body = append(word.Body, expr)
	}
}

func (p *Parser) parseList(open lexer.Token) (Node, error) {
	list := &ListNode{base: base{open.Pos}}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.RBRACK {
			p.advance()
			return list, nil
		}
		if tok.Kind == lexer.EOF {
			return nil, p.errf(tok, "unterminated list literal")
		}
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
}

func (p *Parser) parseArray(tok lexer.Token) (Node, error) {
	if tok.Text == "[" {
		arr := &ArrayNode{base: base{tok.Pos}, IsLit: true}
		for {
			inner, err := p.peek()
			if err != nil {
				return nil, err
			}
			if inner.Kind == lexer.RBRACK {
				p.advance()
				return arr, nil
			}
			if inner.Kind == lexer.EOF {
				return nil, p.errf(inner, "unterminated array literal")
			}
			item, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, item)
		}
	}
	return &ArrayNode{base: base{tok.Pos}, Name: tok.Text}, nil
}

func (p *Parser) parseIdentOrDot(first lexer.Token) (Node, error) {
	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.Kind != lexer.DOT {
		return &CallNode{base: base{first.Pos}, Name: first.Text}, nil
	}
	parts := []string{first.Text}
	for {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.Kind != lexer.DOT {
			break
		}
		p.advance()
		identTok, err := p.advance()
		if err != nil {
			return nil, err
		}
		if identTok.Kind != lexer.IDENT {
			return nil, p.errf(identTok, "expected identifier after '.'")
		}
		parts = append(parts, identTok.Text)
	}
	return &DotNode{base: base{first.Pos}, Parts: parts}, nil
}
