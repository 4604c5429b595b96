package domain

import (
	"fmt"
	"io"
	"strings"
)

type ListingEntry struct {
	Name           string `json:"name"`
	OriginalSize   int64  `json:"original_size"`
	CompressedSize int64  `json:"compressed_size"`
}

type Listing struct {
	Name    string         `json:"name"`
	Stats   Stats          `json:"stats"`
	Entries []ListingEntry `json:"entries"`
}

// Ratio returns 100 - 100*compressed/original. It fails with
// ErrDivisionGuard while no bytes are stored.
func (l Listing) Ratio() (float64, error) {
	if l.Stats.OriginalSize == 0 {
		return 0, ErrDivisionGuard
	}
	return 100.0 - 100.0*float64(l.Stats.CompressedSize)/float64(l.Stats.OriginalSize), nil
}

// WriteTo writes the human readable report: totals first, then one line per
// entry.
func (l Listing) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== System: %s ===\n", l.Name)
	fmt.Fprintf(&b, "Total files: %d\n", l.Stats.Files)
	fmt.Fprintf(&b, "Original size: %d bytes\n", l.Stats.OriginalSize)
	fmt.Fprintf(&b, "Compressed size: %d bytes\n", l.Stats.CompressedSize)
	if ratio, err := l.Ratio(); err == nil {
		fmt.Fprintf(&b, "Compression ratio: %.2f%%\n", ratio)
	} else {
		b.WriteString("Compression ratio: n/a\n")
	}
	b.WriteString("\nContents:\n")
	for _, e := range l.Entries {
		fmt.Fprintf(&b, "- %s (%d bytes -> %d bytes)\n", e.Name, e.OriginalSize, e.CompressedSize)
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
