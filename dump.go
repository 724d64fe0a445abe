package polypart

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The dump format is a line-oriented description of a polygon set:
//
//	<polygon count>
//	then for each polygon:
//	  <vertex count>
//	  <is_hole as 0|1>
//	  <x> <y>    (one line per vertex)
//
// Fields are separated by single spaces, records by single newlines, and a
// single trailing newline terminates the stream. In integer mode the writer
// truncates coordinates toward zero.

// ReadPolygons parses a polygon dump from r.
func ReadPolygons(r io.Reader) ([]Polygon, error) {
	scanner := bufio.NewScanner(r)
	lineno := 0
	nextLine := func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("line %d: unexpected end of dump", lineno+1)
		}
		lineno++
		return scanner.Text(), nil
	}

	line, err := nextLine()
	if err != nil {
		return nil, err
	}
	polyCount, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("line %d: bad polygon count %q", lineno, line)
	}

	polys := make([]Polygon, 0, polyCount)
	for p := 0; p < polyCount; p++ {
		line, err := nextLine()
		if err != nil {
			return nil, err
		}
		numVertices, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad vertex count %q", lineno, line)
		}

		line, err = nextLine()
		if err != nil {
			return nil, err
		}
		var isHole bool
		switch line {
		case "0":
			isHole = false
		case "1":
			isHole = true
		default:
			return nil, fmt.Errorf("line %d: bad hole flag %q", lineno, line)
		}

		points := make([]Point, numVertices)
		for i := 0; i < numVertices; i++ {
			line, err = nextLine()
			if err != nil {
				return nil, err
			}
			fields := strings.Split(line, " ")
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: want 2 coordinates, got %d", lineno, len(fields))
			}
			x, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad x coordinate %q", lineno, fields[0])
			}
			y, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad y coordinate %q", lineno, fields[1])
			}
			points[i] = Point{x, y}
		}
		polys = append(polys, NewPolygon(points, isHole))
	}
	return polys, nil
}

// WritePolygons serializes the polygon set to w in dump format. With decimal
// false, coordinates are written as integers truncated toward zero.
func WritePolygons(w io.Writer, polys []Polygon, decimal bool) error {
	bw := bufio.NewWriter(w)

	coord := func(v float64) string {
		if decimal {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return strconv.FormatInt(int64(v), 10)
	}

	fmt.Fprintf(bw, "%d\n", len(polys))
	for i := range polys {
		poly := &polys[i]
		fmt.Fprintf(bw, "%d\n", poly.NumPoints())
		if poly.IsHole() {
			fmt.Fprintln(bw, "1")
		} else {
			fmt.Fprintln(bw, "0")
		}
		for j := 0; j < poly.NumPoints(); j++ {
			pt := poly.Point(j)
			fmt.Fprintf(bw, "%s %s\n", coord(pt.X), coord(pt.Y))
		}
	}
	return bw.Flush()
}
