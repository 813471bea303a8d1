package plotly

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js" charset="utf-8"></script>
<style>
  html, body { margin: 0; padding: 0; }
  #diagram { width: 100vw; height: 100vh; }
</style>
</head>
<body>
<div id="diagram"></div>
<script>
  var figure = {{.Figure}};
  Plotly.newPlot("diagram", figure.data, figure.layout, {responsive: true});
</script>
</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

// WriteHTML writes the figure as a standalone interactive HTML page.
// plotly.js is loaded from its CDN, so viewing the file needs a network
// connection but the file itself stays small.
func WriteHTML(fig *Figure, title, filename string) error {
	raw, err := json.Marshal(fig)
	if err != nil {
		return fmt.Errorf("encoding figure: %w", err)
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Execute(f, struct {
		Title  string
		Figure template.JS
	}{Title: title, Figure: template.JS(raw)})
}
