package advisory

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/navigator/internal/domain"
)

const jsonOnly = "Respond with JSON only. Do not include any preamble, explanation or markdown."

type prompt struct {
	b strings.Builder
}

func newPrompt(role string) *prompt {
	p := &prompt{}
	p.b.WriteString(role)
	p.b.WriteString("\n\n")
	return p
}

func (p *prompt) line(format string, args ...any) *prompt {
	fmt.Fprintf(&p.b, format, args...)
	p.b.WriteByte('\n')
	return p
}

// field writes "label: value", skipping empty values.
func (p *prompt) field(label string, value any) *prompt {
	s := strings.TrimSpace(fmt.Sprint(value))
	if s == "" {
		return p
	}
	return p.line("%s: %s", label, s)
}

func (p *prompt) blank() *prompt {
	p.b.WriteByte('\n')
	return p
}

func (p *prompt) records(title string, recs []domain.SearchRecord, limit int) *prompt {
	p.line("%s:", title)
	if len(recs) == 0 {
		return p.line("(none found)")
	}
	for i, r := range recs {
		if i == limit {
			break
		}
		p.line("- Title: %s", orNA(r.Title))
		p.line("  Snippet: %s", orNA(r.Snippet))
		p.line("  Link: %s", orNA(r.Link))
	}
	return p
}

// shape appends the output contract.
func (p *prompt) shape(example string) string {
	p.blank()
	p.line("Provide the output in this JSON structure:")
	p.b.WriteString(strings.TrimSpace(example))
	p.b.WriteString("\n\n")
	p.b.WriteString(jsonOnly)
	return p.b.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func serviceError(err error) string {
	return fmt.Sprintf("AI service encountered an error: %v", err)
}
