// Package report provides implementations of the types.Reporter
// notification port.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/scaffgen/pkg/ui/styles"
)

// Console writes one styled line per notification, in the classic
// generator vocabulary: added, overwritten, skipped (exists), injected.
type Console struct {
	out io.Writer
}

// NewConsole creates a Console reporter writing to stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleTo creates a Console reporter writing to w.
func NewConsoleTo(w io.Writer) *Console {
	return &Console{out: w}
}

func (c *Console) Added(path string) {
	c.line("Success", "added", path)
}

func (c *Console) Overwritten(path string) {
	c.line("Warning", "overwritten", path)
}

func (c *Console) SkippedExisting(path string) {
	c.line("Muted", "skipped (exists)", path)
}

func (c *Console) Injected(path string) {
	c.line("Success", "injected", path)
}

func (c *Console) line(style, verb, path string) {
	fmt.Fprintf(c.out, "%s %s\n",
		styles.GetStyle(style).Render(verb+":"),
		styles.GetStyle("Path").Render(path))
}
