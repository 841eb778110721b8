package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmquiz/internal/bank"
	"github.com/abhisek/pmquiz/internal/router"
	"github.com/abhisek/pmquiz/internal/screen"
	"github.com/abhisek/pmquiz/internal/ui/components"
	"github.com/abhisek/pmquiz/internal/ui/layout"
	"github.com/abhisek/pmquiz/internal/ui/theme"
)

// Opener builds a freshly mounted screen for a question.
type Opener func(q bank.Question) screen.Screen

// HomeScreen lists the bank and opens one question at a time.
type HomeScreen struct {
	questions []bank.Question
	counts    map[bank.Kind]int
	open      Opener
	filter    components.TextInput
	menu      components.Menu
	visible   []bank.Question
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a HomeScreen over b. Selecting a question pushes open(q).
func New(b *bank.Bank, open Opener) *HomeScreen {
	h := &HomeScreen{
		questions: b.All(),
		counts:    b.CountByKind(),
		open:      open,
		filter:    components.NewTextInput("filtrar por título o tipo", 40),
	}
	h.rebuild()
	return h
}

// rebuild refreshes the menu from the filter, keeping the cursor on the
// same question when it is still visible.
func (h *HomeScreen) rebuild() {
	current := -1
	if h.menu.Selected < len(h.visible) {
		current = h.visible[h.menu.Selected].ID
	}

	h.visible = make([]bank.Question, 0, len(h.questions))
	items := make([]components.MenuItem, 0, len(h.questions))
	selected := 0
	for _, q := range h.questions {
		kind := bank.KindDisplayName(q.Kind)
		if !h.filter.Matches(q.Title) && !h.filter.Matches(kind) {
			continue
		}
		if q.ID == current {
			selected = len(items)
		}
		h.visible = append(h.visible, q)
		items = append(items, components.MenuItem{
			Label:  q.Title,
			Detail: kind,
			Action: h.openCmd(q),
		})
	}
	h.menu = components.NewMenu(items)
	h.menu.Selected = selected
}

func (h *HomeScreen) openCmd(q bank.Question) func() tea.Cmd {
	return func() tea.Cmd {
		s := h.open(q)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: s}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyPressMsg)

	if h.filter.Focused() {
		if isKey {
			switch kmsg.String() {
			case "enter", "esc", "up", "down":
				h.filter.Blur()
				if kmsg.String() == "esc" {
					h.filter.Reset()
					h.rebuild()
				}
				return h, nil
			}
		}
		var cmd tea.Cmd
		h.filter, cmd = h.filter.Update(msg)
		h.rebuild()
		return h, cmd
	}

	if isKey {
		switch kmsg.String() {
		case "/":
			return h, h.filter.Focus()
		case "esc":
			if h.filter.Value() != "" {
				h.filter.Reset()
				h.rebuild()
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	summary := make([]string, 0, len(bank.AllKinds()))
	for _, k := range bank.AllKinds() {
		summary = append(summary, fmt.Sprintf("%s: %d", bank.KindDisplayName(k), h.counts[k]))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Preguntas") + "\n")
	b.WriteString(theme.Subtitle.Render(strings.Join(summary, "  ·  ")) + "\n\n")
	if h.filter.Focused() || h.filter.Value() != "" {
		b.WriteString(h.filter.View() + "\n\n")
	}

	if len(h.visible) == 0 {
		b.WriteString(theme.Hint.Render("    Ninguna pregunta coincide con el filtro.") + "\n")
	} else {
		b.WriteString(h.menu.View())
	}

	header := lipgloss.Height(b.String()) - len(h.menu.Items) - 1
	content := layout.Window(b.String(), height-2, header+h.menu.Selected)
	return components.Card(content, cw)
}

func (h *HomeScreen) Title() string {
	return "Página de Estudio"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Aplicar"},
			{Key: "Esc", Description: "Limpiar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "/", Description: "Filtrar"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

// Visible returns the questions that pass the current filter.
func (h *HomeScreen) Visible() []bank.Question {
	return h.visible
}
