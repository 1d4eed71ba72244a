// Package average thins out timestamped CSV measurement logs by averaging
// blocks of consecutive rows into a single row.
//
// The first line is treated as the column header and always passed through.
// Every following row starts with an integer timestamp (seconds) followed by
// numeric columns; blank columns are missing values. Rows belong to the same
// block while each timestamp is exactly one greater than the previous one. Once
// a block holds N rows it is written as one row carrying the timestamp of its
// middle row and the mean of every column.
package average

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jbvmio/nthline/log"
	"github.com/jbvmio/nthline/pipeline"
	"github.com/pkg/errors"
)

// DefaultN is the default number of rows averaged into one.
const DefaultN = 30

// ErrInvalidN is returned for a block size that is not positive.
var ErrInvalidN = errors.New("block size must be a positive integer")

type row struct {
	ts   int64
	vals []float64
}

// Averager is a pipeline processor averaging blocks of N consecutive rows.
type Averager struct {
	n          int
	headerSeen bool
	fields     int
	last       int64
	block      []row
	l          log.Logger
}

// New returns an Averager for blocks of n rows.
func New(n int, l log.Logger) (*Averager, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidN, "got %d", n)
	}
	if l == nil {
		l = log.NewNoop()
	}
	return &Averager{
		n: n,
		l: l,
	}, nil
}

// Process passes the header, discards rows that only fill the current block and
// replaces the row completing a block with the block average.
func (a *Averager) Process(d *pipeline.Line) (bool, error) {
	rec, err := parseRecord(d.Text)
	if err != nil {
		a.l.Debugf("skipping line %d: %v", d.Num, err)
		return false, nil
	}
	if !a.headerSeen {
		a.headerSeen = true
		a.fields = len(rec)
		d.Text = strings.Join(rec, ",")
		return true, nil
	}
	if len(rec) == 0 || len(rec) != a.fields {
		a.l.Debugf("skipping line %d: %d field(s), header has %d", d.Num, len(rec), a.fields)
		return false, nil
	}
	r, err := parseRow(rec)
	if err != nil {
		a.l.Debugf("skipping line %d: %v", d.Num, err)
		return false, nil
	}
	if r.ts > a.last+1 || r.ts <= a.last {
		a.block = a.block[:0]
	}
	a.block = append(a.block, r)
	a.last = r.ts
	if len(a.block) < a.n {
		return false, nil
	}
	d.Text = a.format()
	a.block = a.block[:0]
	return true, nil
}

func (a *Averager) format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d,  ", a.block[a.n/2].ts)
	for col := 0; col < a.fields-1; col++ {
		var sum float64
		for _, r := range a.block {
			sum += r.vals[col]
		}
		if col > 0 {
			b.WriteString(", ")
		}
		if avg := sum / float64(a.n); !math.IsNaN(avg) {
			fmt.Fprintf(&b, "%.3E", avg)
		}
	}
	return b.String()
}

func parseRecord(s string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(s))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rec, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	return rec, err
}

func parseRow(rec []string) (row, error) {
	ts, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
	if err != nil {
		return row{}, errors.Wrap(err, "invalid timestamp")
	}
	r := row{ts: ts, vals: make([]float64, 0, len(rec)-1)}
	for _, field := range rec[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			r.vals = append(r.vals, math.NaN())
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return row{}, errors.Wrapf(err, "invalid value %q", field)
		}
		r.vals = append(r.vals, v)
	}
	return r, nil
}
