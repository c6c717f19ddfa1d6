package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type scanner struct {
	src  []byte
	off  int
	line int
	col  int
}

func newScanner(src []byte) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

func (s *scanner) pos() Pos {
	return Pos{Line: s.line, Col: s.col, Offset: s.off}
}

func (s *scanner) eof() bool {
	return s.off >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.off]
}

func (s *scanner) next() byte {
	c := s.src[s.off]
	s.off++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

func (s *scanner) nextRune() rune {
	r, size := utf8.DecodeRune(s.src[s.off:])
	for i := 0; i < size; i++ {
		s.next()
	}
	return r
}

// skipSpace consumes whitespace (EDN treats commas as whitespace) and
// line comments.
func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\n', '\r', ',':
			s.next()
		case ';':
			for !s.eof() && s.peek() != '\n' {
				s.next()
			}
		default:
			return
		}
	}
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', '(', ')', '[', ']', '{', '}', '"', ';':
		return true
	}
	return false
}

func isSymbolStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// readToken consumes up to the next delimiter.
func (s *scanner) readToken() string {
	start := s.off
	for !s.eof() && !isDelimiter(s.peek()) {
		s.next()
	}
	return string(s.src[start:s.off])
}

func parseAtom(s *scanner) (*Node, error) {
	start := s.pos()
	tok := s.readToken()
	if tok == "" {
		return nil, &Error{Pos: start, Message: fmt.Sprintf("unexpected %q", string(s.peek()))}
	}
	return atomNode(tok, Span{Start: start, End: s.pos()})
}

func atomNode(tok string, span Span) (*Node, error) {
	switch tok {
	case "nil":
		return &Node{Kind: KindNil, Span: span}, nil
	case "true":
		return &Node{Kind: KindBool, Span: span, Bool: true}, nil
	case "false":
		return &Node{Kind: KindBool, Span: span}, nil
	}
	if tok[0] == ':' {
		if len(tok) == 1 {
			return nil, &Error{Pos: span.Start, Message: "empty keyword"}
		}
		return &Node{Kind: KindKeyword, Span: span, Text: tok[1:]}, nil
	}
	if isNumberToken(tok) {
		return numberNode(tok, span)
	}
	return &Node{Kind: KindSymbol, Span: span, Text: tok}, nil
}

func isNumberToken(tok string) bool {
	c := tok[0]
	if c >= '0' && c <= '9' {
		return true
	}
	return (c == '+' || c == '-') && len(tok) > 1 && tok[1] >= '0' && tok[1] <= '9'
}

func numberNode(tok string, span Span) (*Node, error) {
	if strings.HasSuffix(tok, "N") || strings.HasSuffix(tok, "M") {
		return nil, &Error{Pos: span.Start, Message: "arbitrary-precision number literals are not supported"}
	}
	if strings.ContainsAny(tok, ".eE") {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &Error{Pos: span.Start, Message: fmt.Sprintf("invalid float literal %q", tok)}
		}
		return &Node{Kind: KindFloat, Span: span, Float: f}, nil
	}
	i, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, &Error{Pos: span.Start, Message: fmt.Sprintf("invalid integer literal %q", tok)}
	}
	return &Node{Kind: KindInt, Span: span, Int: i}, nil
}

func parseString(s *scanner) (*Node, error) {
	start := s.pos()
	s.next() // opening quote
	var sb strings.Builder
	for {
		if s.eof() {
			return nil, &Error{Pos: start, Message: "unterminated string literal"}
		}
		c := s.next()
		switch c {
		case '"':
			return &Node{Kind: KindStr, Span: Span{Start: start, End: s.pos()}, Text: sb.String()}, nil
		case '\\':
			if s.eof() {
				return nil, &Error{Pos: s.pos(), Message: "unterminated escape sequence"}
			}
			switch e := s.next(); e {
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case 'n':
				sb.WriteByte('\n')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case 'u':
				r, err := s.readHexRune()
				if err != nil {
					return nil, err
				}
				sb.WriteRune(r)
			default:
				return nil, &Error{Pos: s.pos(), Message: fmt.Sprintf("invalid escape \\%s", string(e))}
			}
		default:
			sb.WriteByte(c)
		}
	}
}

func (s *scanner) readHexRune() (rune, error) {
	at := s.pos()
	var code rune
	for i := 0; i < 4; i++ {
		if s.eof() {
			return 0, &Error{Pos: at, Message: "unterminated unicode escape"}
		}
		c := s.next()
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, &Error{Pos: at, Message: "invalid unicode escape"}
		}
		code = code<<4 | d
	}
	if !utf8.ValidRune(code) {
		return 0, &Error{Pos: at, Message: "invalid unicode escape"}
	}
	return code, nil
}

var namedChars = map[string]rune{
	"newline":   '\n',
	"return":    '\r',
	"space":     ' ',
	"tab":       '\t',
	"backspace": '\b',
	"formfeed":  '\f',
}

func parseChar(s *scanner) (*Node, error) {
	start := s.pos()
	s.next() // backslash
	if s.eof() {
		return nil, &Error{Pos: start, Message: "unterminated character literal"}
	}
	first := s.nextRune()
	word := string(first)
	for !s.eof() && !isDelimiter(s.peek()) && s.peek() != '\\' {
		word += string(s.nextRune())
	}
	span := Span{Start: start, End: s.pos()}

	if utf8.RuneCountInString(word) == 1 {
		return &Node{Kind: KindChar, Span: span, Char: first}, nil
	}
	if r, ok := namedChars[word]; ok {
		return &Node{Kind: KindChar, Span: span, Char: r}, nil
	}
	if len(word) == 5 && word[0] == 'u' {
		sub := newScanner([]byte(word[1:]))
		r, err := sub.readHexRune()
		if err == nil {
			return &Node{Kind: KindChar, Span: span, Char: r}, nil
		}
	}
	return nil, &Error{Pos: start, Message: fmt.Sprintf("invalid character literal \\%s", word)}
}
