package tags

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"path"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/zerr"
)

// FuncMap returns the template functions:
//
//	less "css/main.less"        URL of the compiled stylesheet, relative to the static URL
//	inlineless "a { b: c; }"    compiled CSS of the given LESS source
//	static "css/main.css"       the path joined to the static URL
func (t *Tags) FuncMap(ctx context.Context) template.FuncMap {
	return template.FuncMap{
		"less": func(logical string) (string, error) {
			res, err := t.File(ctx, logical)
			if err != nil {
				return "", err
			}
			return res.Value(), nil
		},
		"inlineless": func(source string) (template.CSS, error) {
			css, err := t.Inline(ctx, source)
			//nolint:gosec // compiler output is trusted stylesheet text
			return template.CSS(css), err
		},
		"static": func(p string) string {
			return domain.SourceURL(t.staticURL, path.Clean("/"+p))
		},
	}
}

// Parse parses a template with the FuncMap plus lessblock, which executes the
// named template with the given data and compiles its output inline:
//
//	{{define "style"}}@c: red; a { color: @c; }{{end}}
//	<style>{{lessblock "style" .}}</style>
func (t *Tags) Parse(ctx context.Context, name, text string) (*template.Template, error) {
	tmpl := template.New(name)
	funcs := t.FuncMap(ctx)
	funcs["lessblock"] = func(block string, data any) (template.CSS, error) {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, block, data); err != nil {
			return "", err
		}
		css, err := t.Inline(ctx, buf.String())
		//nolint:gosec // compiler output is trusted stylesheet text
		return template.CSS(css), err
	}

	parsed, err := tmpl.Funcs(funcs).Parse(text)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrTemplateRender, err), "template", name)
	}
	return parsed, nil
}

// Render parses text and executes it with data into w.
func (t *Tags) Render(ctx context.Context, w io.Writer, name, text string, data any) error {
	tmpl, err := t.Parse(ctx, name, text)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, data); err != nil {
		return zerr.With(errors.Join(domain.ErrTemplateRender, err), "template", name)
	}
	return nil
}
