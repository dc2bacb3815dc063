package editor

import (
	"strings"
)

// listItems returns the non-blank lines shown as items in list mode
func listItems(content string) []string {
	if content == "" {
		return nil
	}
	var items []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

// moveItem перемещает элемент from на позицию to, остальные сдвигаются
func moveItem(items []string, from, to int) []string {
	out := make([]string, 0, len(items))
	moved := items[from]
	for i, item := range items {
		if i != from {
			out = append(out, item)
		}
	}
	out = append(out, "")
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
