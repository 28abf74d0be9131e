package scanner

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/havrydotdev/classbox/token"
)

var (
	// ErrUnterminated is returned when the source ends inside a string
	// literal or a block comment.
	ErrUnterminated = errors.New("unexpected end of input")
	ErrUnknownChar  = errors.New("unknown character")
	ErrBadEscape    = errors.New("invalid escape sequence")
)

var single = map[byte]token.Kind{
	'(': token.LeftParen,
	')': token.RightParen,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	',': token.Comma,
	'.': token.Dot,
	'-': token.Minus,
	'+': token.Plus,
	';': token.Semicolon,
	'*': token.Star,
}

// Operators that change meaning when followed by '='.
var withEqual = map[byte][2]token.Kind{
	'!': {token.Bang, token.BangEqual},
	'=': {token.Equal, token.EqualEqual},
	'<': {token.Less, token.LessEqual},
	'>': {token.Greater, token.GreaterEqual},
}

var escapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'"':  '"',
	'\\': '\\',
}

type Scanner struct {
	source string
	tokens []token.Token

	start   int
	current int
	line    int
}

func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Scan returns the tokens of the whole source, terminated by an Eof token.
// It stops at the first lexical error.
func (s *Scanner) Scan() ([]token.Token, error) {
	for !s.isAtEnd() {
		s.start = s.current

		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}

	s.tokens = append(s.tokens, token.New(token.Eof, "", nil, s.line))
	return s.tokens, nil
}

func (s *Scanner) scanToken() error {
	c := s.advance()

	if kind, ok := single[c]; ok {
		s.addToken(kind)
		return nil
	}

	if kinds, ok := withEqual[c]; ok {
		if s.match('=') {
			s.addToken(kinds[1])
		} else {
			s.addToken(kinds[0])
		}
		return nil
	}

	switch {
	case c == '/':
		return s.slash()
	case c == ' ', c == '\t', c == '\r':
		return nil
	case c == '\n':
		s.line++
		return nil
	case c == '"':
		return s.string()
	case isDigit(c):
		return s.number()
	case isAlpha(c):
		s.identifier()
		return nil
	}

	return s.errorf(ErrUnknownChar, "%q", c)
}

func (s *Scanner) slash() error {
	switch {
	case s.match('/'):
		for s.peek() != '\n' && !s.isAtEnd() {
			s.advance()
		}
	case s.match('*'):
		return s.blockComment()
	default:
		s.addToken(token.Slash)
	}

	return nil
}

func (s *Scanner) blockComment() error {
	startLine := s.line
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.current += 2
			return nil
		}

		if s.advance() == '\n' {
			s.line++
		}
	}

	return errors.Wrapf(ErrUnterminated, "line %d: comment", startLine)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (s *Scanner) identifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}

	kind, ok := keywords[s.source[s.start:s.current]]
	if !ok {
		kind = token.Identifier
	}

	s.addToken(kind)
}

// number scans an int literal, or a real literal when a fractional part
// follows.
func (s *Scanner) number() error {
	s.digits()

	if s.peek() != '.' || !isDigit(s.peekNext()) {
		n, err := strconv.ParseInt(s.lexeme(), 10, 64)
		if err != nil {
			return s.errorf(err, "int literal")
		}

		s.addToken(token.Int, n)
		return nil
	}

	s.advance()
	s.digits()

	f, err := strconv.ParseFloat(s.lexeme(), 64)
	if err != nil {
		return s.errorf(err, "real literal")
	}

	s.addToken(token.Real, f)
	return nil
}

func (s *Scanner) digits() {
	for isDigit(s.peek()) {
		s.advance()
	}
}

// string scans a double-quoted literal. The token literal holds the text
// with escape sequences resolved; the lexeme keeps the source form.
func (s *Scanner) string() error {
	startLine := s.line
	sb := strings.Builder{}

	for !s.isAtEnd() {
		c := s.advance()
		switch c {
		case '"':
			s.addToken(token.String, sb.String())
			return nil
		case '\n':
			s.line++
		case '\\':
			if s.isAtEnd() {
				continue
			}

			e, ok := escapes[s.advance()]
			if !ok {
				return s.errorf(ErrBadEscape, "\\%c", s.source[s.current-1])
			}

			c = e
		}

		sb.WriteByte(c)
	}

	return errors.Wrapf(ErrUnterminated, "line %d: string", startLine)
}

func (s *Scanner) lexeme() string {
	return s.source[s.start:s.current]
}

func (s *Scanner) addToken(kind token.Kind, literal ...any) {
	var l any
	if len(literal) != 0 {
		l = literal[0]
	}

	s.tokens = append(s.tokens, token.New(kind, s.lexeme(), l, s.line))
}

func (s *Scanner) errorf(err error, format string, args ...any) error {
	return errors.Wrapf(errors.Wrapf(err, format, args...), "line %d", s.line)
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}

	s.current++
	return true
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}

	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}

	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Incomplete reports whether err means the input ended inside a literal
// or comment, so more input could complete it.
func Incomplete(err error) bool {
	return errors.Is(err, ErrUnterminated)
}
