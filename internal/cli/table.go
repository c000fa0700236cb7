package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// ToppingsMarkdown builds the markdown table for a topping list
func ToppingsMarkdown(toppings []ToppingView) string {
	var b strings.Builder
	b.WriteString("| ID | Name |\n")
	b.WriteString("| --: | --- |\n")
	for _, t := range toppings {
		fmt.Fprintf(&b, "| %d | %s |\n", t.ID, escapeCell(t.Name))
	}
	return b.String()
}

// RenderToppings renders the topping table for a terminal. It falls back to
// the raw markdown if glamour fails.
func RenderToppings(toppings []ToppingView, width int) string {
	md := ToppingsMarkdown(toppings)
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
