package linepipe

import (
	"bufio"
	"context"
	"io"

	"github.com/kbukum/utl/errors"
	"github.com/kbukum/utl/strbuf"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Pipeline represents a lazy, pull-based data pipeline.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// Runnable is a fully-configured pipeline ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run executes the pipeline until completion or context cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// Line is one input line with its 1-based line number.
type Line struct {
	Number int
	Text   *strbuf.String
}

// --- Constructors ---

// FromReader creates a pipeline of the lines of r. Line terminators ("\n"
// or "\r\n") are stripped; a final line without a terminator is kept.
func FromReader(r io.Reader) *Pipeline[Line] {
	return &Pipeline[Line]{
		create: func(_ context.Context) Iterator[Line] {
			return &readerIter{r: bufio.NewReader(r)}
		},
	}
}

// --- Terminals ---

// Drain creates a Runnable that pulls all values and sends each to sink.
func Drain[T any](p *Pipeline[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			iter := p.create(ctx)
			defer iter.Close()
			for {
				val, ok, err := iter.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := sink(ctx, val); err != nil {
					return err
				}
			}
		},
	}
}

// --- Internal iterators ---

type readerIter struct {
	r      *bufio.Reader
	number int
	done   bool
}

func (it *readerIter) Next(ctx context.Context) (Line, bool, error) {
	if err := ctx.Err(); err != nil {
		return Line{}, false, err
	}
	if it.done {
		return Line{}, false, nil
	}

	raw, err := it.r.ReadBytes('\n')
	if err == io.EOF {
		it.done = true
		if len(raw) == 0 {
			return Line{}, false, nil
		}
	} else if err != nil {
		return Line{}, false, errors.IO("read input", err)
	}

	it.number++
	text := strbuf.New(raw, len(raw))
	if raw[len(raw)-1] == '\n' {
		text.RemoveAt(text.Len()-1, 1)
		text.TrimRight("\r")
	}
	return Line{Number: it.number, Text: text}, true, nil
}

func (it *readerIter) Close() error { return nil }
