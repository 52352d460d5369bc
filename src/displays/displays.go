// Package displays reports the active displays for troubleshooting overlay
// placement.
package displays

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/kbinani/screenshot"
	"golang.design/x/clipboard"
)

// Display is one active display in physical virtual-screen coordinates.
type Display struct {
	Index  int
	Bounds image.Rectangle
}

// List returns every active display.
func List() []Display {
	n := screenshot.NumActiveDisplays()
	out := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Display{Index: i, Bounds: screenshot.GetDisplayBounds(i)})
	}
	return out
}

// Report formats displays as one line each.
func Report(ds []Display) string {
	if len(ds) == 0 {
		return "no active displays\n"
	}
	var b strings.Builder
	for _, d := range ds {
		fmt.Fprintf(&b, "display %d: %dx%d at (%d,%d)\n",
			d.Index, d.Bounds.Dx(), d.Bounds.Dy(), d.Bounds.Min.X, d.Bounds.Min.Y)
	}
	return b.String()
}

// Print writes the report to w and, when copyToClipboard is set, to the
// system clipboard as well.
func Print(w io.Writer, copyToClipboard bool) error {
	report := Report(List())
	if _, err := io.WriteString(w, report); err != nil {
		return err
	}
	if !copyToClipboard {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(report))
	return nil
}
