// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thoreinstein/vscode-kit/internal/errors"
)

// Confirmer asks line-based yes/no questions.
//
// The reader is buffered once per Confirmer so consecutive prompts
// consume consecutive lines of the same input.
type Confirmer struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewConfirmer creates a Confirmer using stdin and stdout.
func NewConfirmer() *Confirmer {
	return NewConfirmerWithIO(os.Stdin, os.Stdout)
}

// NewConfirmerWithIO creates a Confirmer with custom reader and writer for testing.
func NewConfirmerWithIO(r io.Reader, w io.Writer) *Confirmer {
	return &Confirmer{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// ConfirmOverwrite asks whether the existing file at path should be replaced.
//
// Answers are trimmed and compared case-insensitively:
//   - "y" or "yes" returns true
//   - "n", "no" or an empty line returns false
//   - anything else repeats the question
//
// A read failure, including end of input, returns false.
func (c *Confirmer) ConfirmOverwrite(path string) bool {
	for {
		fmt.Fprintf(c.writer, "File exists: %s. Overwrite? [y/N]: ", path)

		line, err := c.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
		// Unrecognized answer, ask again
	}
}
