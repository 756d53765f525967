// Package progress draws byte-level read progress for input files on a
// terminal.
package progress

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
)

const (
	sizedTemplate   = `{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }} {{speed . }}`
	unsizedTemplate = `{{string . "prefix"}} {{counters . }} {{speed . }}`
)

// IsTerminal reports whether w is a terminal. Anything that is not an
// *os.File is treated as non-interactive.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Wrap returns rc with a progress bar drawn to w as bytes are read.
// size < 0 means unknown (stdin). Closing the result finishes the bar and
// closes rc.
func Wrap(rc io.ReadCloser, size int64, label string, w io.Writer) io.ReadCloser {
	tmpl := sizedTemplate
	if size < 0 {
		tmpl = unsizedTemplate
		size = 0
	}
	bar := pb.New64(size)
	bar.SetTemplateString(tmpl)
	bar.SetWriter(w)
	bar.Set(pb.Bytes, true)
	bar.Set("prefix", label)
	bar.Start()
	return bar.NewProxyReader(rc)
}
