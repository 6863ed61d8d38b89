package curve

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Relative emits lowercase commands whose coordinates are offsets from the
	// current point. The first move of a path is still effectively absolute,
	// as the pen starts at the origin.
	Relative bool
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// Smooth elements are written as S and T commands. Callers targeting formats
// without implied control points should pass the output of [ResolveSmooth].
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		return formatCoord(n, opts.MaxPrecision)
	}

	// cur and start are only used in relative mode.
	var cur, start Point
	rel := func(pt Point) (string, string) {
		if opts.Relative {
			d := pt.Sub(cur)
			return format(d.X), format(d.Y)
		}
		return format(pt.X), format(pt.Y)
	}
	cmd := func(c byte) byte {
		if opts.Relative {
			return c + ('a' - 'A')
		}
		return c
	}

	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			x, y := rel(el.P0)
			writef("%c%s,%s", cmd('M'), x, y)
			start = el.P0
		case LineToKind:
			x, y := rel(el.P0)
			writef("%c%s,%s", cmd('L'), x, y)
		case QuadToKind:
			x0, y0 := rel(el.P0)
			x1, y1 := rel(el.P1)
			writef("%c%s,%s %s,%s", cmd('Q'), x0, y0, x1, y1)
		case CubicToKind:
			x0, y0 := rel(el.P0)
			x1, y1 := rel(el.P1)
			x2, y2 := rel(el.P2)
			writef("%c%s,%s %s,%s %s,%s", cmd('C'), x0, y0, x1, y1, x2, y2)
		case SmoothQuadToKind:
			x, y := rel(el.P0)
			writef("%c%s,%s", cmd('T'), x, y)
		case SmoothCubicToKind:
			x0, y0 := rel(el.P0)
			x1, y1 := rel(el.P1)
			writef("%c%s,%s %s,%s", cmd('S'), x0, y0, x1, y1)
		case ClosePathKind:
			write([]byte{cmd('Z')})
		default:
			panic("unreachable")
		}
		if pt, ok := el.EndPoint(); ok {
			cur = pt
		} else {
			cur = start
		}
	}
	return err
}

func formatCoord(n float64, maxPrec int) string {
	var s string
	if maxPrec <= 0 {
		s = strconv.FormatFloat(n, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.IndexByte(s, '.') != -1 {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
	}
	if s == "-0" {
		return "0"
	}
	return s
}
