package macro

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed CompareVersions.bas.tmpl
var sourceTemplate string

var tmpl = template.Must(template.New("macro").Funcs(template.FuncMap{
	"vbstr": vbString,
}).Parse(sourceTemplate))

// Params are the workbook-specific values baked into the macro.
type Params struct {
	Procedure  string
	Sheet      string
	Binary     string
	Extensions []string
}

func (p Params) ExtensionList() string {
	exts := make([]string, 0, len(p.Extensions))
	for _, ext := range p.Extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	return strings.Join(exts, ",")
}

// Render produces the VBA source for p.
func Render(p Params) (string, error) {
	if !isIdentifier(p.Procedure) {
		return "", fmt.Errorf("invalid procedure name %q", p.Procedure)
	}
	if p.Binary == "" {
		p.Binary = "svn"
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, p); err != nil {
		return "", fmt.Errorf("failed to render macro: %w", err)
	}
	return b.String(), nil
}

// vbString escapes s for use inside a VBA string literal.
func vbString(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '_' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}
