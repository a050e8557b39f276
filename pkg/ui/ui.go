// Package ui renders command output for people and for scripts. It covers
// the component's own CLI surface (action listings and errors); sync
// action payloads never go through it.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/kbcomponent/pkg/ui/json"
	"github.com/arthur-debert/kbcomponent/pkg/ui/terminal"
	"github.com/arthur-debert/kbcomponent/pkg/ui/text"
	"github.com/arthur-debert/kbcomponent/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a result value, such as an action listing
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto detects terminal
// capabilities when output is a file and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
