// Package parse implements parsing of EDN text into a generic syntax tree.
//
// The tree is deliberately uninterpreted: collection literals keep their
// source order and duplicates, and tagged literals keep their raw element.
// Lowering into the value model (including tag dispatch) happens in package
// edn, which hands *Node values to registered tag readers.
package parse

import (
	"fmt"
	"unicode/utf8"
)

// Pos is a position in the source text. Line and Col are 1-based; Col counts
// bytes from the start of the line. Offset is the 0-based byte offset.
type Pos struct {
	Line   int
	Col    int
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span is the half-open source range [Start, End) a node was parsed from.
type Span struct {
	Start Pos
	End   Pos
}

// Kind identifies the syntactic shape of a Node.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindChar
	KindStr
	KindSymbol
	KindKeyword
	KindList
	KindVector
	KindMap
	KindSet
	KindTagged
)

var kindNames = map[Kind]string{
	KindNil:     "nil",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindChar:    "char",
	KindStr:     "string",
	KindSymbol:  "symbol",
	KindKeyword: "keyword",
	KindList:    "list",
	KindVector:  "vector",
	KindMap:     "map",
	KindSet:     "set",
	KindTagged:  "tagged",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is one form of the syntax tree.
//
// Payload fields by Kind:
//   - KindBool: Bool
//   - KindInt: Int
//   - KindFloat: Float
//   - KindChar: Char
//   - KindStr, KindSymbol, KindKeyword: Text (keyword text excludes the colon)
//   - KindList, KindVector, KindSet: Children, in source order
//   - KindMap: Children, alternating key and value, in source order
//   - KindTagged: Text holds the tag (without '#'), Children[0] the element
type Node struct {
	Kind Kind
	Span Span

	Bool     bool
	Int      int64
	Float    float64
	Char     rune
	Text     string
	Children []*Node
}

// Error is a positioned syntax error.
//
// Message is intended for humans; callers needing the location should use
// Pos rather than matching on the rendered string.
type Error struct {
	Pos     Pos
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Parse parses exactly one top-level form. Trailing whitespace and comments
// are allowed; any further form is an error.
func Parse(data []byte) (*Node, error) {
	if !utf8.Valid(data) {
		return nil, &Error{Pos: Pos{Line: 1, Col: 1}, Message: "EDN must be valid UTF-8"}
	}
	s := newScanner(data)
	var node *Node
	for node == nil {
		s.skipSpace()
		if s.eof() {
			return nil, &Error{Pos: s.pos(), Message: "empty input"}
		}
		var err error
		node, err = parseForm(s)
		if err != nil {
			return nil, err
		}
	}
	s.skipSpace()
	if !s.eof() {
		return nil, &Error{Pos: s.pos(), Message: "unexpected content after top-level form"}
	}
	return node, nil
}

// ParseString is Parse over a string.
func ParseString(src string) (*Node, error) {
	return Parse([]byte(src))
}

// parseForm parses one form. A nil node with a nil error means the form was
// a discard (#_) and produced nothing; callers skip it.
func parseForm(s *scanner) (*Node, error) {
	s.skipSpace()
	start := s.pos()
	if s.eof() {
		return nil, &Error{Pos: start, Message: "unexpected end of input"}
	}

	switch c := s.peek(); c {
	case '(':
		s.next()
		return parseSeq(s, start, KindList, ')')
	case '[':
		s.next()
		return parseSeq(s, start, KindVector, ']')
	case '{':
		s.next()
		node, err := parseSeq(s, start, KindMap, '}')
		if err != nil {
			return nil, err
		}
		if len(node.Children)%2 != 0 {
			return nil, &Error{Pos: start, Message: "map literal with an odd number of forms"}
		}
		return node, nil
	case ')', ']', '}':
		return nil, &Error{Pos: start, Message: fmt.Sprintf("unexpected %q", string(c))}
	case '"':
		return parseString(s)
	case '\\':
		return parseChar(s)
	case '#':
		return parseDispatch(s)
	default:
		return parseAtom(s)
	}
}

func parseSeq(s *scanner, start Pos, kind Kind, closer byte) (*Node, error) {
	var children []*Node
	for {
		s.skipSpace()
		if s.eof() {
			return nil, &Error{Pos: s.pos(), Message: fmt.Sprintf("unterminated %s, expected %q", kind, string(closer))}
		}
		if s.peek() == closer {
			s.next()
			return &Node{Kind: kind, Span: Span{Start: start, End: s.pos()}, Children: children}, nil
		}
		child, err := parseForm(s)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		children = append(children, child)
	}
}

// parseElement parses forms until one survives discarding.
func parseElement(s *scanner) (*Node, error) {
	for {
		n, err := parseForm(s)
		if err != nil {
			return nil, err
		}
		if n != nil {
			return n, nil
		}
	}
}

// parseDispatch handles '#' forms: sets, tagged elements and discards.
func parseDispatch(s *scanner) (*Node, error) {
	start := s.pos()
	s.next() // '#'
	if s.eof() {
		return nil, &Error{Pos: start, Message: "unexpected end of input after '#'"}
	}
	switch c := s.peek(); {
	case c == '{':
		s.next()
		return parseSeq(s, start, KindSet, '}')
	case c == '_':
		s.next()
		// Consume one surviving form and drop it.
		if _, err := parseElement(s); err != nil {
			return nil, err
		}
		return nil, nil
	case c == '#':
		return nil, &Error{Pos: start, Message: "symbolic values are not supported"}
	case isSymbolStart(c):
		tag := s.readToken()
		child, err := parseElement(s)
		if err != nil {
			return nil, err
		}
		return &Node{
			Kind:     KindTagged,
			Span:     Span{Start: start, End: child.Span.End},
			Text:     tag,
			Children: []*Node{child},
		}, nil
	default:
		return nil, &Error{Pos: start, Message: fmt.Sprintf("unexpected %q after '#'", string(c))}
	}
}
