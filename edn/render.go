package edn

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Render returns v's canonical textual form. Rendered text re-parses to an
// Equal value except for Data, which renders through its display form only,
// and non-finite floats, which have no EDN literal and render as their Go
// forms. CanonicalBytes rejects both.
func Render(v Edn) string {
	var sb strings.Builder
	render(&sb, v)
	return sb.String()
}

func render(sb *strings.Builder, v Edn) {
	switch x := v.(type) {
	case Nil:
		sb.WriteString("nil")
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(x)))
	case Int:
		sb.WriteString(strconv.FormatInt(int64(x), 10))
	case Float:
		sb.WriteString(formatFloat(float64(x)))
	case Char:
		renderChar(sb, rune(x))
	case Str:
		renderStr(sb, string(x))
	case Symbol:
		sb.WriteString(string(x))
	case Keyword:
		sb.WriteByte(':')
		sb.WriteString(string(x))
	case List:
		renderSeq(sb, "(", ")", x)
	case Vector:
		renderSeq(sb, "[", "]", x)
	case Map:
		sb.WriteByte('{')
		for i, e := range x.entries {
			if i > 0 {
				sb.WriteByte(' ')
			}
			render(sb, e.Key)
			sb.WriteByte(' ')
			render(sb, e.Val)
		}
		sb.WriteByte('}')
	case Set:
		renderSeq(sb, "#{", "}", x.elems)
	case Tagged:
		sb.WriteByte('#')
		sb.WriteString(x.Tag)
		sb.WriteByte(' ')
		render(sb, x.Value)
	case Data:
		sb.WriteString(x.Datum.String())
	}
}

func renderSeq(sb *strings.Builder, opener, closer string, elems []Edn) {
	sb.WriteString(opener)
	for i, e := range elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		render(sb, e)
	}
	sb.WriteString(closer)
}

// formatFloat keeps the rendered form float-shaped so it re-parses as a
// Float rather than an Int.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

func renderChar(sb *strings.Builder, r rune) {
	switch r {
	case '\n':
		sb.WriteString(`\newline`)
	case '\r':
		sb.WriteString(`\return`)
	case ' ':
		sb.WriteString(`\space`)
	case '\t':
		sb.WriteString(`\tab`)
	case '\b':
		sb.WriteString(`\backspace`)
	case '\f':
		sb.WriteString(`\formfeed`)
	default:
		if unicode.IsPrint(r) {
			sb.WriteByte('\\')
			sb.WriteRune(r)
		} else {
			fmt.Fprintf(sb, `\u%04X`, r)
		}
	}
}

func renderStr(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(sb, `\u%04X`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
}

func (v Nil) String() string     { return Render(v) }
func (v Bool) String() string    { return Render(v) }
func (v Int) String() string     { return Render(v) }
func (v Float) String() string   { return Render(v) }
func (v Char) String() string    { return Render(v) }
func (v Str) String() string     { return Render(v) }
func (v Symbol) String() string  { return Render(v) }
func (v Keyword) String() string { return Render(v) }
func (v List) String() string    { return Render(v) }
func (v Vector) String() string  { return Render(v) }
func (v Map) String() string     { return Render(v) }
func (v Set) String() string     { return Render(v) }
func (v Tagged) String() string  { return Render(v) }
func (v Data) String() string    { return Render(v) }
