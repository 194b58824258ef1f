package render

import (
	"strings"
	"testing"
)

func TestBadge(t *testing.T) {
	svg := Badge("token usage", "1.5M", "#6E56CF")

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Error("output must be a standalone SVG document")
	}
	for _, want := range []string{
		`aria-label="token usage: 1.5M"`,
		`fill="#6E56CF"`,
		`>token usage</text>`,
		`>1.5M</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("badge missing %q\n%s", want, svg)
		}
	}
}

func TestBadge_DefaultColor(t *testing.T) {
	svg := Badge("label", "value", "")
	if !strings.Contains(svg, `fill="#6E56CF"`) {
		t.Error("empty color must fall back to the default accent")
	}
}

func TestBadge_EscapesMarkup(t *testing.T) {
	svg := Badge(`a<b>&"c"`, "v", "#000")
	if strings.Contains(svg, `a<b>`) {
		t.Error("label markup must be escaped")
	}
	if !strings.Contains(svg, "a&lt;b&gt;&amp;&quot;c&quot;") {
		t.Errorf("escaped label missing:\n%s", svg)
	}
}

func TestTextWidth_CountsRunesNotBytes(t *testing.T) {
	// Multibyte labels should size by glyph count, not byte length.
	if textWidth("トークン") != textWidth("abcd") {
		t.Errorf("width(トークン) = %d, width(abcd) = %d; want equal",
			textWidth("トークン"), textWidth("abcd"))
	}
}
