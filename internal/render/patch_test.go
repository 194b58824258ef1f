package render

import (
	"errors"
	"strings"
	"testing"
)

const (
	startM = "<!-- usagemark:start -->"
	endM   = "<!-- usagemark:end -->"
)

func TestSplice_ReplacesBetweenMarkers(t *testing.T) {
	doc := "# Readme\n\n" + startM + "\nold content\n" + endM + "\n\ntail\n"

	got, err := Splice(doc, startM, endM, "new content\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "# Readme\n\n" + startM + "\nnew content\n" + endM + "\n\ntail\n"
	if got != want {
		t.Errorf("spliced doc:\n%q\nwant:\n%q", got, want)
	}
}

func TestSplice_PreservesOutsideContent(t *testing.T) {
	doc := "before\n" + startM + "\nx\n" + endM + "\nafter"

	got, err := Splice(doc, startM, endM, "y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "before\n") || !strings.HasSuffix(got, "\nafter") {
		t.Errorf("content outside markers changed:\n%q", got)
	}
}

func TestSplice_Idempotent(t *testing.T) {
	doc := startM + "\nold\n" + endM

	once, err := Splice(doc, startM, endM, "fragment")
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Splice(once, startM, endM, "fragment")
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("splice not idempotent:\n%q\nvs\n%q", once, twice)
	}
}

func TestSplice_EmptyRegion(t *testing.T) {
	// Markers directly adjacent still get the content inserted between them.
	doc := startM + endM
	got, err := Splice(doc, startM, endM, "content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != startM+"\ncontent\n"+endM {
		t.Errorf("got %q", got)
	}
}

func TestSplice_MarkerErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no start", "text\n" + endM, ErrStartMarkerMissing},
		{"no end", startM + "\ntext", ErrEndMarkerMissing},
		{"no markers", "just text", ErrStartMarkerMissing},
		{"inverted", endM + "\n" + startM, ErrMarkersOutOfOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Splice(tt.doc, startM, endM, "content")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
