package question

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pmquiz/internal/bank"
	"github.com/abhisek/pmquiz/internal/quiz"
	"github.com/abhisek/pmquiz/internal/screen"
	"github.com/abhisek/pmquiz/internal/ui/components"
	"github.com/abhisek/pmquiz/internal/ui/layout"
	"github.com/abhisek/pmquiz/internal/ui/theme"
)

type matchingScreen struct {
	base
	widget *quiz.Matching
	picker components.Picker
	cursor int
}

var (
	_ screen.Screen          = (*matchingScreen)(nil)
	_ screen.KeyHintProvider = (*matchingScreen)(nil)
)

func newMatching(q bank.Question, w *quiz.Matching, env Env) *matchingScreen {
	s := &matchingScreen{
		base:   base{question: q, env: env},
		widget: w,
		picker: components.NewPicker(pickPlaceholder, w.Choices()),
	}
	s.reset = components.NewButton(resetLabel, "r", func() tea.Cmd {
		s.widget.Reset()
		return nil
	})
	return s
}

func (s *matchingScreen) rows() []bank.Row {
	return s.widget.Question().Left
}

func (s *matchingScreen) currentRow() string {
	return s.rows()[s.cursor].ID
}

func (s *matchingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	var cmd tea.Cmd
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows())-1 {
			s.cursor++
		}
	case "right", "l", "space":
		s.choose(s.picker.Next)
	case "left", "h":
		s.choose(s.picker.Prev)
	case "backspace", "delete":
		s.widget.Clear(s.currentRow())
	case "r":
		s.reset, cmd = s.reset.Update(msg)
	}
	return s, cmd
}

func (s *matchingScreen) choose(step func(string) string) {
	row := s.currentRow()
	chosen, _ := s.widget.Chosen(row)
	s.widget.Select(row, step(chosen))
	s.env.logger().Debug("row answered",
		zap.Int("question", s.question.ID),
		zap.String("row", row),
		zap.Stringer("verdict", s.widget.EvaluateRow(row)),
	)
}

func (s *matchingScreen) View(width, height int) string {
	cw := components.ContentWidth(width) - 4
	m := s.widget.Question()

	var b strings.Builder
	b.WriteString(s.header(m.Prompt, nil, m.Image, cw))
	b.WriteString(components.NewProgressBar("Respondidas", s.widget.Answered(), len(m.Left), cw).View() + "\n\n")

	focus := 0
	for i, row := range m.Left {
		focused := i == s.cursor
		if focused {
			focus = lineOf(&b)
		}
		label := fmt.Sprintf("%s. %s", row.ID, row.Text)
		if focused {
			b.WriteString(theme.Cursor.Width(cw).Render(label) + "\n")
		} else {
			b.WriteString(theme.Body.Width(cw).Render(label) + "\n")
		}

		chosen, _ := s.widget.Chosen(row.ID)
		b.WriteString("    " + s.picker.View(chosen, focused) + "\n")
		if fb := components.InlineFeedback(s.widget.EvaluateRow(row.ID), correctLabel,
			incorrectLabel+" Correcta: "+s.widget.SolutionText(row.ID)); fb != "" {
			b.WriteString("    " + fb + "\n")
		}
	}

	b.WriteString("\n" + s.reset.View())
	return frame(b.String(), focus, width, height)
}

func (s *matchingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Fila"},
		{Key: "←→", Description: "Elegir"},
		{Key: "Retroceso", Description: "Borrar"},
		{Key: "R", Description: resetLabel},
		{Key: "Esc", Description: "Volver"},
	}
}
