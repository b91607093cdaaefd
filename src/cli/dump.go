// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/H0llyW00dzZ/binspan/src/buffer"
	"github.com/H0llyW00dzZ/binspan/src/gc"
	"github.com/H0llyW00dzZ/binspan/src/hex"
	"github.com/H0llyW00dzZ/binspan/src/stopwatch"
)

// dumpOptions controls how a single input is rendered.
type dumpOptions struct {
	delimiter string
	lower     bool
	width     int   // bytes per line, 0 for a single line
	chunk     int   // bytes per read
	skip      int   // leading bytes to discard
	limit     int64 // bytes to emit, negative for no limit
}

// Appends counts the append strategies used while streaming one input.
type Appends struct {
	InPlace     int `json:"inPlace"`
	Consolidate int `json:"consolidate"`
	Grow        int `json:"grow"`
}

func (a *Appends) record(st buffer.Strategy) {
	switch st {
	case buffer.StrategyInPlace:
		a.InPlace++
	case buffer.StrategyConsolidate:
		a.Consolidate++
	case buffer.StrategyGrow:
		a.Grow++
	}
}

// Line is one rendered output line.
type Line struct {
	Offset int64  `json:"offset"`
	Hex    string `json:"hex"`
}

// Result describes one dumped input.
type Result struct {
	Name    string        `json:"name"`
	Bytes   int64         `json:"bytes"`
	Lines   []Line        `json:"lines"`
	Appends Appends       `json:"appends"`
	Elapsed time.Duration `json:"elapsedNs"`
}

// dumper streams inputs through a window span and renders hex lines.
// One dumper is shared by every worker; it holds no per-input state.
type dumper struct {
	opts    dumpOptions
	hex     *hex.Formatter
	texts   *gc.TextPool
	watches *stopwatch.Pool
}

func newDumper(opts dumpOptions, texts *gc.TextPool, watches *stopwatch.Pool) *dumper {
	return &dumper{
		opts:    opts,
		hex:     hex.NewFormatter(texts),
		texts:   texts,
		watches: watches,
	}
}

func (d *dumper) render(s buffer.Span) string {
	if d.opts.lower {
		return d.hex.Lower(s.Buffer(), s.Offset(), s.Len(), d.opts.delimiter)
	}
	return d.hex.Upper(s.Buffer(), s.Offset(), s.Len(), d.opts.delimiter)
}

// dump reads r to EOF and returns the rendered lines.
//
// Each chunk is appended to a window span that starts with room for two
// chunks. Full lines are sliced off the front and discarded, so the window
// normally appends in place or consolidates; when a chunk cannot fit even
// after consolidation the window grows.
func (d *dumper) dump(ctx context.Context, name string, r io.Reader) (*Result, error) {
	sw := d.watches.Rent()
	defer d.watches.Free(sw)
	sw.Start()

	res := &Result{Name: name}
	scratch := make([]byte, d.opts.chunk)
	window, err := buffer.FromCount(make([]byte, 2*d.opts.chunk), 0)
	if err != nil {
		return nil, err
	}

	skip := d.opts.skip
	remaining := d.opts.limit
	offset := int64(d.opts.skip)

	emit := func(line buffer.Span) {
		res.Lines = append(res.Lines, Line{Offset: offset, Hex: d.render(line)})
		res.Bytes += int64(line.Len())
		offset += int64(line.Len())
	}

	for remaining != 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, rerr := r.Read(scratch)
		data := buffer.From(scratch[:n]...)

		if skip > 0 && !data.IsEmpty() {
			k := min(skip, data.Len())
			if data, err = data.Discard(k); err != nil {
				return nil, err
			}
			skip -= k
		}
		if remaining > 0 && int64(data.Len()) > remaining {
			if data, err = data.Slice(0, int(remaining)); err != nil {
				return nil, err
			}
		}
		if remaining > 0 {
			remaining -= int64(data.Len())
		}

		if !data.IsEmpty() {
			st := window.Plan(data)
			res.Appends.record(st)
			if st == buffer.StrategyGrow {
				window = window.Grow(data.Len())
			}
			window = window.Append(data)
		}

		for d.opts.width > 0 && window.Len() >= d.opts.width {
			line, err := window.Slice(0, d.opts.width)
			if err != nil {
				return nil, err
			}
			emit(line)
			if window, err = window.Discard(d.opts.width); err != nil {
				return nil, err
			}
		}

		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return nil, fmt.Errorf("read %s: %w", name, rerr)
		}
		if rerr != nil {
			break
		}
	}

	if !window.IsEmpty() {
		emit(window)
	}

	sw.Stop()
	res.Elapsed = sw.Elapsed()
	return res, nil
}

// writeText writes the result as "OFFSET  HEX" lines.
func (d *dumper) writeText(w io.Writer, res *Result, header bool) error {
	buf := d.texts.Rent()
	defer d.texts.Free(buf)

	if header {
		fmt.Fprintf(buf, "%s:\n", res.Name)
	}
	for _, line := range res.Lines {
		fmt.Fprintf(buf, "%08X  %s\n", line.Offset, line.Hex)
	}

	_, err := buf.WriteTo(w)
	return err
}
