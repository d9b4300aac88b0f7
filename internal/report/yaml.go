package report

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlTrailer struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

type yamlReport struct {
	Report  `yaml:",inline"`
	Trailer []yamlTrailer `yaml:"trailer,omitempty"`
}

// YAML renders the report as a YAML document.
func YAML(r Report) ([]byte, error) {
	doc := yamlReport{Report: r}
	for _, block := range r.Trailer {
		doc.Trailer = append(doc.Trailer, yamlTrailer{Heading: block.Heading, Paragraphs: block.Paragraphs})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return out, nil
}
