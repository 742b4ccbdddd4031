package static

import "embed"

// Templates contains the embedded HTML page templates.
//
//go:embed templates/*.html
var Templates embed.FS

// StyleCSS contains the embedded stylesheet shared by all pages.
//
//go:embed style.css
var StyleCSS string
