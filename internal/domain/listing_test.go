package domain

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_Ratio(t *testing.T) {
	l := Listing{Stats: Stats{Files: 2, OriginalSize: 200, CompressedSize: 50}}
	ratio, err := l.Ratio()
	require.NoError(t, err)
	assert.InDelta(t, 75.0, ratio, 1e-9)

	_, err = Listing{}.Ratio()
	assert.ErrorIs(t, err, ErrDivisionGuard)
}

func TestListing_WriteTo(t *testing.T) {
	l := Listing{
		Name:  "default",
		Stats: Stats{Files: 1, OriginalSize: 10, CompressedSize: 8},
		Entries: []ListingEntry{
			{Name: "a.txt", OriginalSize: 10, CompressedSize: 8},
		},
	}
	var buf bytes.Buffer
	n, err := l.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	assert.Contains(t, out, "=== System: default ===")
	assert.Contains(t, out, "Total files: 1")
	assert.Contains(t, out, "Compression ratio: 20.00%")
	assert.Contains(t, out, "- a.txt (10 bytes -> 8 bytes)")
}

func TestListing_WriteToEmptyStore(t *testing.T) {
	var buf bytes.Buffer
	_, err := Listing{Name: "default"}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Compression ratio: n/a")
}
