package edn

import (
	"errors"
	"fmt"

	"xdao.co/edn/parse"
)

// TagFunc converts the element of a tagged literal into a value. Readers
// producing custom concrete types wrap them with NewData; any Edn works.
type TagFunc func(node *parse.Node) (Edn, error)

// Reader reads EDN text into values, dispatching tagged literals to
// registered tag readers.
//
// A Reader is not safe for concurrent mutation; register all tags before
// sharing it for reads.
type Reader struct {
	tags map[string]TagFunc
}

// NewReader returns a Reader with no tags registered. Unregistered tagged
// literals lower to Tagged values.
func NewReader() *Reader {
	return &Reader{tags: make(map[string]TagFunc)}
}

// AddReader registers fn for #tag literals, replacing any previous reader
// for the same tag.
func (r *Reader) AddReader(tag string, fn TagFunc) {
	r.tags[tag] = fn
}

// ReadString reads exactly one value from src.
func (r *Reader) ReadString(src string) (Edn, error) {
	return r.Read([]byte(src))
}

// Read reads exactly one value from b.
func (r *Reader) Read(b []byte) (Edn, error) {
	node, err := parse.Parse(b)
	if err != nil {
		var pe *parse.Error
		if errors.As(err, &pe) {
			return nil, wrapError(ErrParse, pe.Pos, pe.Message, err)
		}
		return nil, wrapError(ErrParse, parse.Pos{}, "malformed EDN", err)
	}
	return r.lower(node)
}

// Read reads one value with no tag readers registered.
func Read(b []byte) (Edn, error) {
	return NewReader().Read(b)
}

// ReadString reads one value with no tag readers registered.
func ReadString(src string) (Edn, error) {
	return NewReader().ReadString(src)
}

func (r *Reader) lower(n *parse.Node) (Edn, error) {
	switch n.Kind {
	case parse.KindNil:
		return Nil{}, nil
	case parse.KindBool:
		return Bool(n.Bool), nil
	case parse.KindInt:
		return Int(n.Int), nil
	case parse.KindFloat:
		return Float(n.Float), nil
	case parse.KindChar:
		return Char(n.Char), nil
	case parse.KindStr:
		return Str(n.Text), nil
	case parse.KindSymbol:
		return Symbol(n.Text), nil
	case parse.KindKeyword:
		return Keyword(n.Text), nil
	case parse.KindList:
		elems, err := r.lowerAll(n.Children)
		if err != nil {
			return nil, err
		}
		return List(elems), nil
	case parse.KindVector:
		elems, err := r.lowerAll(n.Children)
		if err != nil {
			return nil, err
		}
		return Vector(elems), nil
	case parse.KindMap:
		entries := make([]MapEntry, 0, len(n.Children)/2)
		for i := 0; i+1 < len(n.Children); i += 2 {
			k, err := r.lower(n.Children[i])
			if err != nil {
				return nil, err
			}
			for _, have := range entries {
				if Equal(have.Key, k) {
					return nil, newError(ErrSyntax, n.Children[i].Span.Start, "duplicate map key")
				}
			}
			v, err := r.lower(n.Children[i+1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: k, Val: v})
		}
		return NewMap(entries...), nil
	case parse.KindSet:
		elems, err := r.lowerAll(n.Children)
		if err != nil {
			return nil, err
		}
		for i := range elems {
			for j := 0; j < i; j++ {
				if Equal(elems[j], elems[i]) {
					return nil, newError(ErrSyntax, n.Children[i].Span.Start, "duplicate set element")
				}
			}
		}
		return NewSet(elems...), nil
	case parse.KindTagged:
		if fn, ok := r.tags[n.Text]; ok {
			v, err := fn(n.Children[0])
			if err != nil {
				return nil, wrapError(ErrTag, n.Span.Start, fmt.Sprintf("reader for tag #%s failed", n.Text), err)
			}
			if v == nil {
				return nil, newError(ErrTag, n.Span.Start, fmt.Sprintf("reader for tag #%s returned no value", n.Text))
			}
			return v, nil
		}
		child, err := r.lower(n.Children[0])
		if err != nil {
			return nil, err
		}
		return Tagged{Tag: n.Text, Value: child}, nil
	default:
		return nil, newError(ErrInternal, n.Span.Start, fmt.Sprintf("unhandled node kind %s", n.Kind))
	}
}

func (r *Reader) lowerAll(nodes []*parse.Node) ([]Edn, error) {
	elems := make([]Edn, 0, len(nodes))
	for _, c := range nodes {
		v, err := r.lower(c)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return elems, nil
}
