package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/example/launchlist/internal/templates"
)

var (
	printableOnce sync.Once
	printableTmpl *template.Template
	printableErr  error
)

func printableTemplate() (*template.Template, error) {
	printableOnce.Do(func() {
		src, err := templates.GetPrintableReport()
		if err != nil {
			printableErr = fmt.Errorf("failed to load print template: %w", err)
			return
		}
		printableTmpl, printableErr = template.New("printable").
			Funcs(template.FuncMap{"emphasis": emphasis}).
			Parse(src)
	})
	return printableTmpl, printableErr
}

// Printable renders the report as a print-ready HTML document.
func Printable(r Report) (string, error) {
	tmpl, err := printableTemplate()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("failed to render print document: %w", err)
	}
	return buf.String(), nil
}

// emphasis escapes text and turns **bold** pairs into <strong> and newlines into <br>.
func emphasis(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	parts := strings.Split(escaped, "**")

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			// an unmatched trailing marker stays literal
			if i%2 == 1 && i == len(parts)-1 {
				b.WriteString("**")
			} else if i%2 == 1 {
				b.WriteString("<strong>")
			} else {
				b.WriteString("</strong>")
			}
		}
		b.WriteString(p)
	}
	return template.HTML(strings.ReplaceAll(b.String(), "\n", "<br>\n"))
}
