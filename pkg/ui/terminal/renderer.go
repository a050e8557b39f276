// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/kbcomponent/pkg/types"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"})
	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"})
)

// Renderer renders markdown through glamour and messages through lipgloss
type Renderer struct {
	output   io.Writer
	markdown *glamour.TermRenderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	md, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Renderer{output: w, markdown: md}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case []types.Action:
		return r.renderMarkdown(actionsTable(v))
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, errorStyle.Render("Error: "+err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, messageStyle.Render(msg))
	return err
}

func (r *Renderer) renderMarkdown(md string) error {
	out, err := r.markdown.Render(md)
	if err != nil {
		// plain markdown is still readable
		out = md
	}
	_, err = io.WriteString(r.output, out)
	return err
}

func actionsTable(list []types.Action) string {
	var b strings.Builder
	b.WriteString("| Action | Handler | Mode |\n")
	b.WriteString("|--------|---------|------|\n")
	for _, a := range list {
		fmt.Fprintf(&b, "| `%s` | `%s` | %s |\n", a.Name, a.HandlerID, a.Mode())
	}
	return b.String()
}
