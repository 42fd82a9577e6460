// Package render turns template assets into artifact text.
package render

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"
	"text/template"

	"github.com/olimci/cmake-init/pkg/errdef"
)

//go:embed templates/*.tmpl
var builtin embed.FS

const (
	assetDir = "templates"
	assetExt = ".tmpl"
)

// Render executes text against data. It keeps no state between calls, and a
// reference to a key missing from data is an error.
func Render(name, text string, data map[string]any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", errdef.Wrap(errdef.CodeInvariant, err, "parsing template %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errdef.Wrap(errdef.CodeInvariant, err, "executing template %s", name)
	}

	return buf.String(), nil
}

// Assets is a set of named templates.
type Assets struct {
	fsys fs.FS
	dir  string
}

// Builtin returns the templates compiled into the binary.
func Builtin() *Assets {
	return &Assets{fsys: builtin, dir: assetDir}
}

// FromFS reads templates named <name>.tmpl from dir in fsys.
func FromFS(fsys fs.FS, dir string) *Assets {
	return &Assets{fsys: fsys, dir: dir}
}

// Text returns the unrendered body of the named template.
func (a *Assets) Text(name string) (string, error) {
	data, err := fs.ReadFile(a.fsys, path.Join(a.dir, name+assetExt))
	if err != nil {
		return "", errdef.Wrap(errdef.CodeInvariant, err, "loading template %s", name)
	}
	return string(data), nil
}

// Render loads the named template and executes it against data.
func (a *Assets) Render(name string, data map[string]any) (string, error) {
	text, err := a.Text(name)
	if err != nil {
		return "", err
	}
	return Render(name, text, data)
}

// Names lists the available templates.
func (a *Assets) Names() ([]string, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeIO, err, "reading templates")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), assetExt); ok && !e.IsDir() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Require fails unless every name in required is available.
func (a *Assets) Require(required ...string) error {
	names, err := a.Names()
	if err != nil {
		return err
	}

	var missing []string
	for _, name := range required {
		if !slices.Contains(names, name) {
			missing = append(missing, name+assetExt)
		}
	}
	if len(missing) > 0 {
		return errdef.New(errdef.CodeUserInput, "templates missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
