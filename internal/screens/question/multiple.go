package question

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pmquiz/internal/bank"
	"github.com/abhisek/pmquiz/internal/quiz"
	"github.com/abhisek/pmquiz/internal/screen"
	"github.com/abhisek/pmquiz/internal/ui/components"
	"github.com/abhisek/pmquiz/internal/ui/layout"
)

type multipleChoiceScreen struct {
	base
	widget *quiz.MultipleChoice
	list   components.Checklist
	check  components.Button
}

var (
	_ screen.Screen          = (*multipleChoiceScreen)(nil)
	_ screen.KeyHintProvider = (*multipleChoiceScreen)(nil)
)

func newMultipleChoice(q bank.Question, w *quiz.MultipleChoice, env Env) *multipleChoiceScreen {
	opts := w.Options()
	items := make([]components.ChecklistItem, len(opts))
	for i, o := range opts {
		items[i] = components.ChecklistItem{Key: o.Key, Label: o.Text}
	}

	s := &multipleChoiceScreen{
		base:   base{question: q, env: env},
		widget: w,
		list:   components.NewChecklist(items),
	}
	s.check = components.NewButton(checkLabel, "enter", func() tea.Cmd {
		s.widget.Check()
		s.env.logger().Info("answers checked",
			zap.Int("question", q.ID),
			zap.Strings("selected", s.widget.State.Selected),
			zap.Stringer("verdict", s.widget.Verdict()),
		)
		return nil
	})
	s.reset = components.NewButton(resetLabel, "r", func() tea.Cmd {
		s.widget.Reset()
		return nil
	})
	return s
}

func (s *multipleChoiceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	var cmd tea.Cmd
	switch kmsg.String() {
	case "space", "x":
		s.widget.Toggle(s.list.Current())
	case "enter":
		s.check, cmd = s.check.Update(msg)
	case "r":
		s.reset, cmd = s.reset.Update(msg)
	default:
		s.list = s.list.Update(msg)
	}
	return s, cmd
}

func (s *multipleChoiceScreen) View(width, height int) string {
	cw := components.ContentWidth(width) - 4
	mc := s.widget.Question()

	var b strings.Builder
	b.WriteString(s.header(mc.Prompt, mc.Statements, mc.Image, cw) + "\n")
	focus := lineOf(&b) + s.list.Cursor
	b.WriteString(s.list.View(s.widget.IsSelected) + "\n")
	b.WriteString(s.check.View() + "  " + s.reset.View() + "\n")

	if fb := components.Feedback(s.widget.Verdict(), correctLabel,
		incorrectLabel+" Respuesta correcta: "+s.widget.CorrectText(), cw); fb != "" {
		b.WriteString("\n" + fb)
	}

	return frame(b.String(), focus, width, height)
}

func (s *multipleChoiceScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Espacio", Description: "Marcar"},
		{Key: "Enter", Description: checkLabel},
		{Key: "R", Description: resetLabel},
		{Key: "Esc", Description: "Volver"},
	}
}
