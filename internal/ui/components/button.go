package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmquiz/internal/ui/theme"
)

// Button is a styled button bound to a shortcut key.
type Button struct {
	Label    string
	Key      string
	Disabled bool
	OnPress  func() tea.Cmd
}

// NewButton creates a new button triggered by key.
func NewButton(label, key string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Key:     key,
		OnPress: onPress,
	}
}

// Update fires OnPress when the shortcut key is pressed and the button is enabled.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if b.Disabled {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == b.Key && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := b.Label + " [" + b.Key + "]"
	if b.Disabled {
		return theme.ButtonDisabled.Render(label)
	}
	return theme.ButtonActive.Render("▸ " + label)
}
