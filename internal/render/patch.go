package render

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStartMarkerMissing means the document has no start marker.
	ErrStartMarkerMissing = errors.New("start marker not found")
	// ErrEndMarkerMissing means the document has no end marker.
	ErrEndMarkerMissing = errors.New("end marker not found")
	// ErrMarkersOutOfOrder means the end marker precedes the start marker.
	ErrMarkersOutOfOrder = errors.New("end marker precedes start marker")
)

// Splice replaces the content between the start and end markers in doc with
// content, keeping the markers themselves. Everything outside the markers is
// preserved byte for byte. Both markers must be present and correctly
// ordered; a missing or inverted marker is a reported error, never a silent
// append.
func Splice(doc, startMarker, endMarker, content string) (string, error) {
	startIdx := strings.Index(doc, startMarker)
	if startIdx < 0 {
		return "", fmt.Errorf("%w: %q", ErrStartMarkerMissing, startMarker)
	}
	endIdx := strings.Index(doc, endMarker)
	if endIdx < 0 {
		return "", fmt.Errorf("%w: %q", ErrEndMarkerMissing, endMarker)
	}
	if endIdx < startIdx {
		return "", ErrMarkersOutOfOrder
	}

	head := doc[:startIdx+len(startMarker)]
	tail := doc[endIdx:]

	var b strings.Builder
	b.WriteString(head)
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(content, "\n"))
	b.WriteString("\n")
	b.WriteString(tail)
	return b.String(), nil
}
