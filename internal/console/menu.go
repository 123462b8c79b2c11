package console

import (
	"fmt"
	"strings"
)

// RenderMenu numbers choices from 1 and always closes with the fixed -1
// exit option.
func RenderMenu(title string, choices []string, exitLabel string) string {
	var b strings.Builder
	for i, choice := range choices {
		fmt.Fprintf(&b, "%d. %s\n", i+1, choice)
	}
	fmt.Fprintf(&b, "-1. %s", exitLabel)

	return titleStyle.Render(title) + "\n" + panelStyle.Render(b.String())
}
