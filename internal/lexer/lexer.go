package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/boklang/bok/internal/source"
	"github.com/boklang/bok/internal/value"
)

// Lexer tokenizes a source.Input stream, with a small pushback stack so
// multi-character operators can be scanned greedily and backed off.
type Lexer struct {
	in      *source.Input
	pushback []rune
}

// New wraps an already-populated source.Input for tokenizing.
func New(in *source.Input) *Lexer {
	return &Lexer{in: in}
}

func (l *Lexer) readRune() (rune, error) {
	if n := len(l.pushback); n > 0 {
		r := l.pushback[n-1]
		l.pushback = l.pushback[:n-1]
		return r, nil
	}
	return l.in.ReadRuneLoop()
}

func (l *Lexer) peekRune() (rune, error) {
	r, err := l.readRune()
	if err != nil {
		return 0, err
	}
	l.unread(r)
	return r, nil
}

func (l *Lexer) unread(r rune) {
	l.pushback = append(l.pushback, r)
}

func (l *Lexer) pos() source.Location {
	return l.in.Scan.Location
}

func (l *Lexer) errf(format string, args ...interface{}) error {
	return value.ParseError{Pos: l.pos().String(), Message: fmt.Sprintf(format, args...)}
}

// Next scans and returns the next Token. Returns a Token with Kind EOF and
// a nil error at end of input.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		if err == io.EOF {
			return Token{Kind: EOF, Pos: l.pos()}, nil
		}
		return Token{}, err
	}

	start := l.pos()
	r, err := l.readRune()
	if err == io.EOF {
		return Token{Kind: EOF, Pos: start}, nil
	}
	if err != nil {
		return Token{}, err
	}

	switch {
	case r == '(':
		return Token{Kind: LPAREN, Text: "(", Pos: start}, nil
	case r == ')':
		return Token{Kind: RPAREN, Text: ")", Pos: start}, nil
	case r == '[':
		return Token{Kind: LBRACK, Text: "[", Pos: start}, nil
	case r == ']':
		return Token{Kind: RBRACK, Text: "]", Pos: start}, nil
	case r == ':':
		return l.lexColon(start)
	case r == '.':
		nr, perr := l.peekRune()
		if perr == nil && isDigit(nr) {
			return l.lexNumber(start, r)
		}
		return Token{Kind: DOT, Text: ".", Pos: start}, nil
	case r == '@':
		return l.lexArray(start)
	case r == '"' || r == '\'':
		return l.lexString(start, "", r)
	case isDigit(r):
		return l.lexNumber(start, r)
	case isIdentStart(r):
		return l.lexIdentOrAffixString(start, r)
	case isOperatorRune(r):
		return l.lexOperator(start, r)
	default:
		return Token{}, l.errf("unexpected character %q", r)
	}
}

func (l *Lexer) skipSpaceAndComments() error {
	for {
		r, err := l.readRune()
		if err != nil {
			return err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '#':
			for {
				r, err := l.readRune()
				if err != nil {
					return err
				}
				if r == '\n' {
					break
				}
			}
			continue
		default:
			l.unread(r)
			return nil
		}
	}
}

func (l *Lexer) lexColon(start source.Location) (Token, error) {
	r, err := l.peekRune()
	if err != nil || !isIdentStart(r) {
		return Token{}, l.errf("expected identifier after ':'")
	}
	name, err := l.scanIdent()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: COLON, Text: name, Pos: start}, nil
}

func (l *Lexer) lexArray(start source.Location) (Token, error) {
	r, err := l.peekRune()
	if err != nil {
		return Token{}, l.errf("expected identifier or '[' after '@'")
	}
	if r == '[' {
		l.readRune()
		return Token{Kind: ARRAY, Text: "[", Pos: start}, nil
	}
	if !isIdentStart(r) {
		return Token{}, l.errf("expected identifier or '[' after '@'")
	}
	name, err := l.scanIdent()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: ARRAY, Text: name, Pos: start}, nil
}

func (l *Lexer) scanIdent() (string, error) {
	var b strings.Builder
	for {
		r, err := l.peekRune()
		if err != nil {
			break
		}
		if !isIdentPart(r) {
			break
		}
		l.readRune()
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "", l.errf("empty identifier")
	}
	return norm.NFC.String(b.String()), nil
}

func (l *Lexer) lexIdentOrAffixString(start source.Location, first rune) (Token, error) {
	var b strings.Builder
	b.WriteRune(first)
	for {
		r, err := l.peekRune()
		if err != nil {
			break
		}
		if !isIdentPart(r) {
			break
		}
		l.readRune()
		b.WriteRune(r)
	}
	name := norm.NFC.String(b.String())

	// A short run of only d/b/r letters directly followed by a quote is a
	// prefixed string literal, not an identifier.
	if isAffixRun(name) {
		if q, err := l.peekRune(); err == nil && (q == '"' || q == '\'') {
			l.readRune()
			return l.lexString(start, name, q)
		}
	}

	switch name {
	case "True":
		return Token{Kind: TRUE, Text: name, Pos: start}, nil
	case "False":
		return Token{Kind: FALSE, Text: name, Pos: start}, nil
	case "None":
		return Token{Kind: NONE, Text: name, Pos: start}, nil
	case "import":
		return Token{Kind: IMPORT, Text: name, Pos: start}, nil
	default:
		return Token{Kind: IDENT, Text: name, Pos: start}, nil
	}
}

func isAffixRun(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	seen := map[byte]bool{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != 'd' && c != 'b' && c != 'r' {
			return false
		}
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

func (l *Lexer) lexString(start source.Location, affixes string, quote rune) (Token, error) {
	isRaw := strings.Contains(affixes, "r")

	var b strings.Builder
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, l.errf("unterminated string literal")
		}
		if r == quote {
			break
		}
		if r == '\\' && !isRaw {
			esc, err := l.readRune()
			if err != nil {
				return Token{}, l.errf("unterminated escape sequence")
			}
			b.WriteRune(unescape(esc))
			continue
		}
		b.WriteRune(r)
	}

	kind := STRING
	if strings.Contains(affixes, "d") {
		kind = DOCSTRING
	}
	return Token{
		Kind:        kind,
		Text:        b.String(),
		Pos:         start,
		StringValue: b.String(),
		Affixes:     affixes,
	}, nil
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return r
	}
}

func (l *Lexer) lexNumber(start source.Location, first rune) (Token, error) {
	var b strings.Builder
	b.WriteRune(first)
	isFloat := first == '.'

	if first == '0' {
		if r, err := l.peekRune(); err == nil && (r == 'x' || r == 'X' || r == 'o' || r == 'O' || r == 'b' || r == 'B') {
			l.readRune()
			b.WriteRune(r)
			for {
				r, err := l.peekRune()
				if err != nil || !isHexDigit(r) {
					break
				}
				l.readRune()
				b.WriteRune(r)
			}
			n, err := parseRadixInt(b.String())
			if err != nil {
				return Token{}, l.errf("invalid numeric literal %q", b.String())
			}
			return Token{Kind: NUMBER, Text: b.String(), Pos: start, IntValue: n}, nil
		}
	}

	for {
		r, err := l.peekRune()
		if err != nil {
			break
		}
		switch {
		case isDigit(r):
			l.readRune()
			b.WriteRune(r)
		case r == '.' && !isFloat:
			isFloat = true
			l.readRune()
			b.WriteRune(r)
		case (r == 'e' || r == 'E'):
			l.readRune()
			b.WriteRune(r)
			isFloat = true
			if sr, serr := l.peekRune(); serr == nil && (sr == '+' || sr == '-') {
				l.readRune()
				b.WriteRune(sr)
			}
		default:
			goto done
		}
	}
done:
	text := b.String()
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, l.errf("invalid float literal %q", text)
		}
		return Token{Kind: NUMBER, Text: text, Pos: start, FloatValue: f, IsFloat: true}, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, l.errf("invalid integer literal %q", text)
	}
	return Token{Kind: NUMBER, Text: text, Pos: start, IntValue: n}, nil
}

func parseRadixInt(text string) (int64, error) {
	if len(text) < 2 {
		return 0, fmt.Errorf("too short")
	}
	switch text[1] {
	case 'x', 'X':
		return strconv.ParseInt(text[2:], 16, 64)
	case 'o', 'O':
		return strconv.ParseInt(text[2:], 8, 64)
	case 'b', 'B':
		return strconv.ParseInt(text[2:], 2, 64)
	default:
		return 0, fmt.Errorf("unknown radix prefix")
	}
}

func (l *Lexer) lexOperator(start source.Location, first rune) (Token, error) {
	// Greedily consume runes while some operator still starts with what
	// we've read, remembering every rune in case we must back off.
	consumed := []rune{first}
	for len(consumed) < 3 {
		r, err := l.peekRune()
		if err != nil || !isOperatorRune(r) {
			break
		}
		candidate := string(consumed) + string(r)
		if !hasOperatorPrefix(candidate) {
			break
		}
		l.readRune()
		consumed = append(consumed, r)
	}

	// Back off to the longest prefix of consumed that is itself a
	// recognized operator, unreading whatever we overshot by.
	for n := len(consumed); n > 0; n-- {
		text := string(consumed[:n])
		if isOperator(text) {
			for i := len(consumed) - 1; i >= n; i-- {
				l.unread(consumed[i])
			}
			return Token{Kind: OPERATOR, Text: text, Pos: start}, nil
		}
	}
	return Token{}, l.errf("unrecognized operator %q", string(consumed))
}

func isOperator(s string) bool {
	for _, op := range operators {
		if op == s {
			return true
		}
	}
	return false
}

func hasOperatorPrefix(s string) bool {
	for _, op := range operators {
		if strings.HasPrefix(op, s) {
			return true
		}
	}
	return false
}

func isDigit(r rune) bool      { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool   { return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') }
func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentPart(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }
func isOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '~', '&', '|', '^':
		return true
	default:
		return false
	}
}
