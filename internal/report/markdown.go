package report

import (
	"fmt"
	"strings"
)

// Markdown renders the portable report.
func Markdown(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedDate)
	fmt.Fprintf(&b, "**Progress:** %s\n\n", r.Summary())
	b.WriteString("---\n\n")

	for _, s := range r.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Label)
		fmt.Fprintf(&b, "Progress: %d/%d\n\n", s.Done, s.Total)
		for _, item := range s.Items {
			fmt.Fprintf(&b, "- [%s] **%s**: %s\n", checkbox(item.Done), item.Title, item.Description)
		}
		b.WriteString("\n")
	}

	for i, block := range r.Trailer {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", block.Heading)
		b.WriteString(strings.Join(block.Paragraphs, "\n\n"))
		b.WriteString("\n")
	}

	return b.String()
}

func checkbox(done bool) string {
	if done {
		return "x"
	}
	return " "
}
