package components

import (
	"github.com/abhisek/pmquiz/internal/bank"
	"github.com/abhisek/pmquiz/internal/ui/theme"
)

// Picker renders an inline dropdown over a fixed option list. The chosen
// key is owned by the caller; Next and Prev compute the neighbouring key.
type Picker struct {
	Placeholder string
	Options     []bank.Option
}

// NewPicker creates a picker over opts.
func NewPicker(placeholder string, opts []bank.Option) Picker {
	return Picker{Placeholder: placeholder, Options: opts}
}

// Next returns the key after current, starting at the first option when
// nothing is chosen.
func (p Picker) Next(current string) string {
	return p.step(current, 1)
}

// Prev returns the key before current, starting at the last option when
// nothing is chosen.
func (p Picker) Prev(current string) string {
	return p.step(current, -1)
}

func (p Picker) step(current string, delta int) string {
	n := len(p.Options)
	if n == 0 {
		return ""
	}
	idx := -1
	for i, o := range p.Options {
		if o.Key == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta > 0 {
			return p.Options[0].Key
		}
		return p.Options[n-1].Key
	}
	return p.Options[((idx+delta)%n+n)%n].Key
}

// View renders the chosen option, or the placeholder when nothing is chosen.
func (p Picker) View(current string, focused bool) string {
	text := bank.OptionText(p.Options, current)
	style := theme.Unselected
	if text == "" {
		text = p.Placeholder
		style = theme.Hint
	}
	if focused {
		return theme.Cursor.Render("‹ ") + style.Render(text) + theme.Cursor.Render(" ›")
	}
	return "  " + style.Render(text)
}
