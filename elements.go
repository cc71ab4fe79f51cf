package humadocs

import (
	"html/template"
	"net/http"
)

// ElementsOption configures the docs UI handler.
type ElementsOption func(*elementsConfig)

type elementsConfig struct {
	title   string
	specURL string
}

// WithElementsTitle sets the page title for the docs UI.
func WithElementsTitle(title string) ElementsOption {
	return func(c *elementsConfig) {
		c.title = title
	}
}

// WithSpecURL points the docs UI at a non-default spec location.
func WithSpecURL(url string) ElementsOption {
	return func(c *elementsConfig) {
		c.specURL = url
	}
}

// Elements returns a handler serving an interactive API documentation UI.
// It renders Stoplight Elements pointing at the API's OpenAPI spec,
// /openapi.json by default.
func Elements(opts ...ElementsOption) http.Handler {
	cfg := &elementsConfig{
		title:   "API Reference",
		specURL: "/openapi.json",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tmpl := template.Must(template.New("docs").Parse(elementsHTML))

	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort template render
		tmpl.Execute(w, cfg)
	})
}

const elementsHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
  <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
</head>
<body>
  <elements-api
    apiDescriptionUrl="{{.SpecURL}}"
    router="hash"
    layout="sidebar"
  />
</body>
</html>`

// Title returns the configured title (used in the template).
func (c *elementsConfig) Title() string { return c.title }

// SpecURL returns the configured spec URL (used in the template).
func (c *elementsConfig) SpecURL() string { return c.specURL }
