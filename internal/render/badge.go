package render

import (
	"fmt"
	"strings"
)

// charWidth approximates Verdana 11px average glyph width, the usual
// shields-style estimate. Exact text metrics would need font rendering;
// badges tolerate a pixel or two of slack.
const charWidth = 7

const badgeTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="20" role="img" aria-label="%s: %s">
  <linearGradient id="s" x2="0" y2="100%%">
    <stop offset="0" stop-color="#bbb" stop-opacity=".1"/>
    <stop offset="1" stop-opacity=".1"/>
  </linearGradient>
  <clipPath id="r">
    <rect width="%d" height="20" rx="3" fill="#fff"/>
  </clipPath>
  <g clip-path="url(#r)">
    <rect width="%d" height="20" fill="#555"/>
    <rect x="%d" width="%d" height="20" fill="%s"/>
    <rect width="%d" height="20" fill="url(#s)"/>
  </g>
  <g fill="#fff" text-anchor="middle" font-family="Verdana,Geneva,DejaVu Sans,sans-serif" font-size="11">
    <text x="%d" y="14">%s</text>
    <text x="%d" y="14">%s</text>
  </g>
</svg>
`

// Badge renders a flat two-segment SVG badge: a grey label segment and a
// colored value segment.
func Badge(label, value, color string) string {
	if color == "" {
		color = "#6E56CF"
	}
	label = escapeXML(label)
	value = escapeXML(value)

	labelW := textWidth(label)
	valueW := textWidth(value)
	total := labelW + valueW

	return fmt.Sprintf(badgeTemplate,
		total, label, value,
		total,
		labelW,
		labelW, valueW, color,
		total,
		labelW/2, label,
		labelW+valueW/2, value,
	)
}

func textWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n*charWidth + 10 // padding
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
