package report

import (
	"fmt"
	"strings"
)

// Renderer turns a report model into output bytes for one format.
type Renderer interface {
	// Ext is the file extension for this format, without the dot.
	Ext() string
	// Render produces the full report document.
	Render(m *Model) ([]byte, error)
}

// Registry maps report format names to their renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register binds a format name (and aliases) to a renderer.
func (r *Registry) Register(ren Renderer, names ...string) {
	for _, name := range names {
		r.renderers[strings.ToLower(name)] = ren
	}
}

// Lookup resolves a format name to its renderer.
func (r *Registry) Lookup(format string) (Renderer, error) {
	ren, ok := r.renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
	return ren, nil
}

// DefaultRegistry returns a registry with the built-in renderers bound.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&MarkdownRenderer{}, "markdown", "md")
	r.Register(&HTMLRenderer{}, "html", "htm")
	return r
}
