package pointio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/twoopt/geom"
)

var (
	// ErrMalformedRecord indicates a token that does not parse, a non-finite
	// coordinate, or a trailing partial record.
	ErrMalformedRecord = errors.New("pointio: malformed record")

	// ErrNoPoints indicates an input with no records.
	ErrNoPoints = errors.New("pointio: no points")
)

// fieldsPerRecord is the number of tokens in one (id, x, y) record.
const fieldsPerRecord = 3

// Read parses (id, x, y) records from r until EOF.
//
// Errors: ErrMalformedRecord (wrapped with the record number and token),
// ErrNoPoints, or the reader's own error.
func Read(r io.Reader) (geom.PointSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var (
		ps    geom.PointSet
		field int
		id    int64
		p     geom.Point
		err   error
	)
	for sc.Scan() {
		tok := sc.Text()
		rec := len(ps.Points) + 1
		switch field {
		case 0:
			if id, err = strconv.ParseInt(tok, 10, 64); err != nil {
				return geom.PointSet{}, fmt.Errorf("%w: record %d: id %q", ErrMalformedRecord, rec, tok)
			}
		case 1:
			if p.X, err = parseCoord(tok); err != nil {
				return geom.PointSet{}, fmt.Errorf("%w: record %d: x %q", ErrMalformedRecord, rec, tok)
			}
		case 2:
			if p.Y, err = parseCoord(tok); err != nil {
				return geom.PointSet{}, fmt.Errorf("%w: record %d: y %q", ErrMalformedRecord, rec, tok)
			}
			ps.IDs = append(ps.IDs, id)
			ps.Points = append(ps.Points, p)
		}
		field = (field + 1) % fieldsPerRecord
	}
	if err = sc.Err(); err != nil {
		return geom.PointSet{}, err
	}
	if field != 0 {
		return geom.PointSet{}, fmt.Errorf("%w: record %d: %d of %d fields",
			ErrMalformedRecord, len(ps.Points)+1, field, fieldsPerRecord)
	}
	if len(ps.Points) == 0 {
		return geom.PointSet{}, ErrNoPoints
	}

	return ps, nil
}

// parseCoord parses a finite float64 coordinate. NaN and ±Inf are rejected.
func parseCoord(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}

	return v, nil
}

// Write emits one "id x y" record per line. Coordinates use the shortest
// representation that parses back to the same float64.
func Write(w io.Writer, ps geom.PointSet) error {
	if err := ps.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for i, p := range ps.Points {
		buf = strconv.AppendInt(buf[:0], ps.ID(i), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
