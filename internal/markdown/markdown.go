// Package markdown renders assistant replies as terminal-formatted
// markdown. Rendering failures fall back to the raw text, so a bad reply
// never breaks the chat panel.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	internalstrings "github.com/tmcli/tm/internal/strings"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown for terminal output at the given wrap width.
// Empty or whitespace-only input renders as "".
func Render(width int, input string) string {
	value := internalstrings.NormalizeNewlines(input)
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	rendered := safeRender(termRenderer(width), value)
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return ""
	}
	return rendered
}

// safeRender returns the rendered value, falling back to the input when the
// renderer is unavailable, errors, or panics.
func safeRender(r renderer, value string) (out string) {
	out = value
	if r == nil {
		return out
	}
	defer func() {
		if recover() != nil {
			out = value
		}
	}()
	if formatted, err := r.Render(value); err == nil {
		out = formatted
	}
	return out
}

func termRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}
