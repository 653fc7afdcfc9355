package cmd

import (
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v3"

	"github.com/kbukum/utl/errors"
)

// record is one result row. lines is its plain text rendering.
type record interface {
	lines() []string
}

// editRecord is the result of an in-place edit of one input line.
type editRecord struct {
	Line     int    `json:"line" yaml:"line"`
	Text     string `json:"text" yaml:"text"`
	Removed  int    `json:"removed,omitempty" yaml:"removed,omitempty"`
	Replaced int    `json:"replaced,omitempty" yaml:"replaced,omitempty"`
}

func (r editRecord) lines() []string { return []string{r.Text} }

// splitRecord lists the spans of one input line.
type splitRecord struct {
	Line  int      `json:"line" yaml:"line"`
	Count int      `json:"count" yaml:"count"`
	Spans []string `json:"spans" yaml:"spans"`
}

func (r splitRecord) lines() []string { return r.Spans }

// findRecord is a search result; Index is -1 when nothing matched.
type findRecord struct {
	Line  int  `json:"line" yaml:"line"`
	Index int  `json:"index" yaml:"index"`
	Found bool `json:"found" yaml:"found"`
}

func (r findRecord) lines() []string { return []string{strconv.Itoa(r.Index)} }

// printer streams text output and buffers structured output until flush.
type printer struct {
	format  string
	w       io.Writer
	pending []any
}

func newPrinter(format string, w io.Writer) *printer {
	return &printer{format: format, w: w, pending: []any{}}
}

func (p *printer) emit(r record) error {
	if p.format != "text" {
		p.pending = append(p.pending, r)
		return nil
	}
	for _, line := range r.lines() {
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return errors.IO("write output", err)
		}
	}
	return nil
}

func (p *printer) flush() error {
	switch p.format {
	case "json":
		return writeJSON(p.w, p.pending)
	case "yaml":
		return writeYAML(p.w, p.pending)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.IO("write json", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.IO("write yaml", err)
	}
	if err := enc.Close(); err != nil {
		return errors.IO("write yaml", err)
	}
	return nil
}
