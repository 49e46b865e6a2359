// Package markdown renders markdown for the terminal.
package markdown

import (
	"fmt"
	"sync"

	internalstrings "github.com/amonks/butler/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text for terminal output, width columns wide and
// indented by indent spaces. Blank input renders to nil.
func Render(width, indent int, input []byte) []byte {
	out, err := render(width, indent, input)
	if err != nil {
		return fallback(indent, input)
	}
	return out
}

// SafeRender is like Render but also survives a panicking renderer,
// falling back to the unrendered text.
func SafeRender(width, indent int, input []byte) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			out = fallback(indent, input)
		}
	}()
	return Render(width, indent, input)
}

func render(width, indent int, input []byte) ([]byte, error) {
	value := normalize(input)
	if internalstrings.IsBlank(value) {
		return nil, nil
	}

	renderWidth := max(max(width, 1)-max(indent, 0), 1)
	r, err := markdownRenderer(renderWidth)
	if err != nil {
		return nil, err
	}
	formatted, err := r.Render(value)
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	formatted = internalstrings.TrimTrailingNewlines(formatted)
	if internalstrings.IsBlank(formatted) {
		return nil, nil
	}
	return []byte(internalstrings.IndentBlock(formatted, indent)), nil
}

func fallback(indent int, input []byte) []byte {
	value := normalize(input)
	if internalstrings.IsBlank(value) {
		return nil
	}
	return []byte(internalstrings.IndentBlock(value, indent))
}

func normalize(input []byte) string {
	return internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(string(input)))
}

func markdownRenderer(width int) (renderer, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached, nil
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	renderers[width] = created
	return created, nil
}
