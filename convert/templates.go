package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"cmodel/config"
)

// Values is a struct that holds variables we make available for template
// expansion.
type Values struct {
	Context  string
	Name     string
	Source   string
	Title    string
	Language string
	Format   string
}

func newValues(src, title, lang string, format config.OutputFmt) Values {
	return Values{
		Name:     strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Source:   filepath.ToSlash(src),
		Title:    strings.TrimSpace(title),
		Language: lang,
		Format:   format.String(),
	}
}

func expandTemplate(values Values, name config.TemplateFieldName, field string) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
