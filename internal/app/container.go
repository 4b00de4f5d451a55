// Package app is the root container: a page that hosts exactly one view.
package app

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// View is anything that can write its own markup.
type View interface {
	Render(w io.Writer) error
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: sans-serif; }
.App { display: flex; justify-content: center; }
#tooltip { background: #fff; border: 1px solid #333; padding: 4px 8px; font-size: 12px; }
</style>
</head>
<body>
<div class="App">{{.Child}}</div>
</body>
</html>
`))

// Container wraps a single child view in the application page.
type Container struct {
	title string
	child View
}

// NewContainer returns a container for child.
func NewContainer(title string, child View) *Container {
	return &Container{title: title, child: child}
}

// Render writes the full page with the child's markup inside the App div.
func (c *Container) Render(w io.Writer) error {
	var buf bytes.Buffer
	if err := c.child.Render(&buf); err != nil {
		return fmt.Errorf("render child view: %w", err)
	}
	//nolint:gosec // child markup is produced by our own renderer
	data := struct {
		Title string
		Child template.HTML
	}{c.title, template.HTML(buf.String())}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
