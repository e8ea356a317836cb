package lang

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// isoLayout renders an instant with an explicit numeric UTC offset, i.e.
// RFC 3339 with "+00:00" instead of "Z" for UTC.
const isoLayout = "2006-01-02T15:04:05-07:00"

// RenderConfig controls how a final Value is rendered as text.
type RenderConfig struct {
	// Pattern is a strftime-style pattern for instants. Empty means the
	// default ISO-8601 rendering.
	Pattern string
	// Zone shifts instants into a fixed UTC offset before rendering.
	// Nil means UTC.
	Zone *time.Location
	// Seconds renders durations as a raw signed second count instead of
	// the compact breakdown.
	Seconds bool
}

// Render formats the result of an evaluation.
func (c RenderConfig) Render(v Value) (string, error) {
	switch v.Kind {
	case Instant:
		t := v.Time()
		if c.Zone != nil {
			t = t.In(c.Zone)
		}

		if c.Pattern == "" {
			return t.Format(isoLayout), nil
		}

		// %s is not part of the default specification set.
		return strftime.Format(c.Pattern, t, strftime.WithUnixSeconds('s'))

	case Duration:
		if c.Seconds {
			return strconv.FormatInt(v.Seconds(), 10), nil
		}

		return FormatDuration(v.Seconds()), nil

	default:
		return "", fmt.Errorf("unhandled value kind %d", v.Kind)
	}
}

// FormatDuration renders a second count as a compact breakdown like
// "1d2h3m4s", omitting zero components. Zero renders as "0s" and negative
// durations carry a single leading minus.
func FormatDuration(sec int64) string {
	if sec == 0 {
		return "0s"
	}

	var buf strings.Builder

	if sec < 0 {
		buf.WriteByte('-')
		sec = -sec
	}

	consume := func(unit int64, symbol byte) {
		n := sec / unit
		sec -= n * unit

		if n != 0 {
			buf.WriteString(strconv.FormatInt(n, 10))
			buf.WriteByte(symbol)
		}
	}

	consume(secondsPerDay, 'd')
	consume(secondsPerHour, 'h')
	consume(secondsPerMinute, 'm')
	consume(1, 's')

	return buf.String()
}

// ParseZone parses a fixed UTC offset of the form ±HH:MM; "Z", "UTC", and
// the empty string all denote UTC. No timezone database lookup is
// performed.
func ParseZone(s string) (*time.Location, error) {
	switch s {
	case "", "Z", "UTC":
		return time.UTC, nil
	}

	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return nil, fmt.Errorf("invalid UTC offset %q (want ±HH:MM)", s)
	}

	hh, errH := strconv.Atoi(s[1:3])
	mm, errM := strconv.Atoi(s[4:6])

	if errH != nil || errM != nil || hh > 23 || mm > 59 {
		return nil, fmt.Errorf("invalid UTC offset %q (want ±HH:MM)", s)
	}

	offset := hh*secondsPerHour + mm*secondsPerMinute
	if s[0] == '-' {
		offset = -offset
	}

	return time.FixedZone(s, offset), nil
}

// durationLiteralText renders a duration as a single duration literal,
// using the largest unit that divides it evenly. Unlike [FormatDuration]'s
// multi-component breakdown, the result is always one token, so canonical
// text reparses. The form is a fixed point: divisibility survives the
// round trip, so reprinting yields the same text.
func durationLiteralText(sec int64) string {
	unit, symbol := int64(1), byte('s')

	switch {
	case sec == 0:
	case sec%secondsPerDay == 0:
		unit, symbol = secondsPerDay, 'd'
	case sec%secondsPerHour == 0:
		unit, symbol = secondsPerHour, 'h'
	case sec%secondsPerMinute == 0:
		unit, symbol = secondsPerMinute, 'm'
	}

	return strconv.FormatInt(sec/unit, 10) + string(symbol)
}

// FormatNode writes the canonical text form of an expression: one space
// around binary operators, duration literals as a single magnitude+unit
// token, instants in ISO-8601. Parentheses appear only where grouping
// requires them, so reprinting a canonical expression parses to an
// identical tree.
func FormatNode(n Node) string {
	var buf strings.Builder

	writeNode(&buf, n, false)

	return buf.String()
}

// FormatTree renders the expression structure as an indented tree, one
// node per line, for inspecting how an input parsed. The result ends with
// a newline.
func FormatTree(n Node) string {
	var buf strings.Builder

	writeTreeNode(&buf, n, "", "")

	return buf.String()
}

func writeTreeNode(buf *strings.Builder, n Node, prefix, childPrefix string) {
	label, children := treeLabel(n)

	buf.WriteString(prefix)
	buf.WriteString(label)
	buf.WriteByte('\n')

	for i, child := range children {
		if i == len(children)-1 {
			writeTreeNode(buf, child, childPrefix+"└─ ", childPrefix+"   ")
		} else {
			writeTreeNode(buf, child, childPrefix+"├─ ", childPrefix+"│  ")
		}
	}
}

func treeLabel(n Node) (string, []Node) {
	switch n := n.(type) {
	case *Literal:
		if n.Val.Kind == Instant {
			return n.Val.Time().Format(isoLayout), nil
		}

		return durationLiteralText(n.Val.Seconds()), nil

	case *NowExpr:
		return keywordNow, nil

	case *BinaryExpr:
		if n.Op == TokenPlus {
			return "+", []Node{n.Left, n.Right}
		}

		return "-", []Node{n.Left, n.Right}

	case *FuncCall:
		return n.Name, []Node{n.Arg}

	default:
		return "?", nil
	}
}

func writeNode(buf *strings.Builder, n Node, grouped bool) {
	switch n := n.(type) {
	case *Literal:
		if n.Val.Kind == Instant {
			buf.WriteString(n.Val.Time().Format(isoLayout))
		} else {
			buf.WriteString(durationLiteralText(n.Val.Seconds()))
		}

	case *NowExpr:
		buf.WriteString(keywordNow)

	case *BinaryExpr:
		if grouped {
			buf.WriteByte('(')
		}

		writeNode(buf, n.Left, false)

		if n.Op == TokenPlus {
			buf.WriteString(" + ")
		} else {
			buf.WriteString(" - ")
		}

		// A binary right operand was grouped in the source (the grammar is
		// left-associative), so it must be reprinted grouped.
		_, group := n.Right.(*BinaryExpr)
		writeNode(buf, n.Right, group)

		if grouped {
			buf.WriteByte(')')
		}

	case *FuncCall:
		buf.WriteString(n.Name)
		buf.WriteByte('(')
		writeNode(buf, n.Arg, false)
		buf.WriteByte(')')
	}
}
