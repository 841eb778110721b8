package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmquiz/internal/ui/theme"
)

// ChecklistItem is one checkable line.
type ChecklistItem struct {
	Key   string
	Label string
}

// Checklist is a cursor over a list of checkable items. Which items are
// checked is owned by the caller.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// NewChecklist creates a checklist with the cursor on the first item.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Update moves the cursor.
func (c Checklist) Update(msg tea.Msg) Checklist {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	}
	return c
}

// Current returns the key under the cursor.
func (c Checklist) Current() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Items) {
		return ""
	}
	return c.Items[c.Cursor].Key
}

// View renders each item with a checkbox.
func (c Checklist) View(checked func(key string) bool) string {
	var b strings.Builder
	for i, item := range c.Items {
		box := "[ ]"
		if checked(item.Key) {
			box = "[x]"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := prefix + box + " " + item.Label
		if i == c.Cursor {
			b.WriteString(theme.Cursor.Render(line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render(line) + "\n")
		}
	}
	return b.String()
}
