// Package report renders a generation summary for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/vscode-kit/internal/errors"
	"github.com/thoreinstein/vscode-kit/internal/generator"
)

// Format specifies the output format for summaries.
type Format string

const (
	// FormatText produces the human-readable listing.
	FormatText Format = "text"
	// FormatJSON produces a single JSON document on the output writer.
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", errors.Newf("unknown format %q (valid: text, json)", s)
	}
}

// Reporter writes summaries. Created and skipped paths go to out; errors go
// to errOut in text mode.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	format Format
}

// NewReporter creates a Reporter.
func NewReporter(out, errOut io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		errOut: errOut,
		format: format,
	}
}

// Report writes the summary. A nil summary writes nothing.
func (r *Reporter) Report(s *generator.Summary) error {
	if s == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(s)
	default:
		r.reportText(s)
		return nil
	}
}

type jsonSummary struct {
	Created []string              `json:"created"`
	Skipped []string              `json:"skipped"`
	Errors  []generator.FileError `json:"errors"`
	OK      bool                  `json:"ok"`
}

func (r *Reporter) reportJSON(s *generator.Summary) error {
	doc := jsonSummary{
		Created: nonNil(s.Created),
		Skipped: nonNil(s.Skipped),
		Errors:  s.Errors,
		OK:      !s.HasErrors(),
	}
	if doc.Errors == nil {
		doc.Errors = []generator.FileError{}
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(doc), "encoding JSON summary")
}

func (r *Reporter) reportText(s *generator.Summary) {
	heading := color.New(color.Bold)

	if len(s.Created) > 0 {
		heading.Fprintln(r.out, "Created:")
		for _, p := range s.Created {
			fmt.Fprintf(r.out, "- %s\n", color.GreenString(p))
		}
	}

	if len(s.Skipped) > 0 {
		heading.Fprintln(r.out, "Skipped (already exists):")
		for _, p := range s.Skipped {
			fmt.Fprintf(r.out, "- %s\n", color.YellowString(p))
		}
	}

	if len(s.Errors) > 0 {
		heading.Fprintln(r.errOut, "Errors:")
		for _, e := range s.Errors {
			fmt.Fprintf(r.errOut, "- %s: %s\n", color.RedString(e.Path), e.Message)
		}
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
