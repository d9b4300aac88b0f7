// Package templates holds the embedded report templates.
package templates

import (
	"embed"
)

//go:embed report/*.tmpl
var reportTemplates embed.FS

// GetPrintableReport returns the print document template content
func GetPrintableReport() (string, error) {
	content, err := reportTemplates.ReadFile("report/printable.html.tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}
