package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
)

// printDocument writes a decoded document as JSON, indented when writing
// to a terminal and compact when piped
func printDocument(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	if f, ok := w.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			enc.SetIndent("", "  ")
		}
	}
	if err := enc.Encode(doc); err != nil {
		return failure.Wrap(err)
	}
	return nil
}
