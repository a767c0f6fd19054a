// Package render wraps text/template as the generator's rendering
// collaborator: it expands an inline document or a previously registered
// named template against a variable-bindings tree.
package render

import (
	"bytes"
	"text/template"

	"github.com/arthur-debert/scaffgen/pkg/errors"
	"github.com/arthur-debert/scaffgen/pkg/types"
)

// Renderer owns a template namespace. Registered templates are visible to
// inline renders, so documents can reuse shared partials.
type Renderer struct {
	root *template.Template
}

// New creates a Renderer with the standard filter funcs installed.
func New() *Renderer {
	return &Renderer{
		root: template.New("scaffgen").Funcs(Funcs()),
	}
}

// Register adds a reusable template under name.
func (r *Renderer) Register(name, text string) error {
	if _, err := r.root.New(name).Parse(text); err != nil {
		return errors.Wrapf(err, errors.ErrRender, "cannot parse template %q", name)
	}
	return nil
}

// Render expands an inline document against vars.
func (r *Renderer) Render(text string, vars types.Vars) (string, error) {
	// Cloning keeps throwaway inline documents out of the registry while
	// still letting them reference registered templates.
	ns, err := r.root.Clone()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "cannot clone template namespace")
	}
	tmpl, err := ns.New("inline").Parse(text)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "cannot parse document template")
	}
	return execute(tmpl, vars)
}

// RenderNamed expands a registered template against vars.
func (r *Renderer) RenderNamed(name string, vars types.Vars) (string, error) {
	tmpl := r.root.Lookup(name)
	if tmpl == nil {
		return "", errors.Newf(errors.ErrTemplateNotFound, "no template registered as %q", name)
	}
	return execute(tmpl, vars)
}

func execute(tmpl *template.Template, vars types.Vars) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "cannot render template %q", tmpl.Name())
	}
	return buf.String(), nil
}
