package monitor

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# Hover demo

Two list panes play the role of native list widgets. The hover engine polls
the pane under the pointer and keeps its highlighted row correct while the
content scrolls underneath a motionless cursor.

## Try it

1. Park the pointer over a row and do not move it.
2. Scroll with the wheel. The highlight follows the row under the cursor
   instead of sticking to the stale one.
3. Scroll past the top or bottom. Nothing visibly twitches: the handshake
   is suppressed at the extremes.

## Keys

| Key | Action |
| --- | ------ |
| ` + "`↑/k` `↓/j`" + ` | scroll the focused pane by a row |
| ` + "`pgup` `pgdn`" + ` | scroll by a page |
| ` + "`tab`" + ` | switch the focused pane |
| ` + "`/`" + ` | fuzzy-filter the focused pane |
| ` + "`x`" + ` | hide or show the focused pane |
| ` + "`c`" + ` | edit hover settings |
| ` + "`?`" + ` | this help |
| ` + "`q`" + ` | quit |

Shift+wheel is routed as horizontal scrolling. Press any key to close this
help.
`

// renderHelp renders the help overlay for the current terminal width.
func renderHelp(width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(helpMarkdown)
}
