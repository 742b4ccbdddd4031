package chart

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// barTemplate renders the canvas and the script constructing the chart.
// The config is emitted in a JS context, so html/template writes it as JSON.
var barTemplate = template.Must(template.New("bar").Parse(`<div class="chart-container">
<canvas id="{{.ElementID}}"></canvas>
</div>
<script>
new Chart(document.getElementById({{.ElementID}}), {{.Config}});
</script>
`))

// Render writes the chart fragment for b to w.
func Render(w io.Writer, b Binding) error {
	if err := barTemplate.Execute(w, b); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// HTML returns the chart fragment for b, ready for embedding in a page.
func HTML(b Binding) (template.HTML, error) {
	var buf bytes.Buffer
	if err := Render(&buf, b); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
