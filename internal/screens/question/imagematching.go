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

type imageMatchingScreen struct {
	base
	widget *quiz.ImageMatching
	picker components.Picker
	check  components.Button
	cursor int
}

var (
	_ screen.Screen          = (*imageMatchingScreen)(nil)
	_ screen.KeyHintProvider = (*imageMatchingScreen)(nil)
)

func newImageMatching(q bank.Question, w *quiz.ImageMatching, env Env) *imageMatchingScreen {
	s := &imageMatchingScreen{
		base:   base{question: q, env: env},
		widget: w,
		picker: components.NewPicker(typePlaceholder, w.Options()),
	}
	s.check = components.NewButton(checkLabel, "enter", func() tea.Cmd {
		if s.widget.CheckAnswers() {
			s.env.logger().Info("answers checked",
				zap.Int("question", q.ID),
				zap.Stringer("verdict", s.widget.Summary()),
			)
		}
		return nil
	})
	s.check.Disabled = true
	s.reset = components.NewButton(resetLabel, "r", func() tea.Cmd {
		s.widget.Reset()
		return nil
	})
	return s
}

func (s *imageMatchingScreen) figures() []bank.Figure {
	return s.widget.Question().Images
}

func (s *imageMatchingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
		if s.cursor < len(s.figures())-1 {
			s.cursor++
		}
	case "right", "l", "space":
		s.choose(s.picker.Next)
	case "left", "h":
		s.choose(s.picker.Prev)
	case "enter":
		s.check, cmd = s.check.Update(msg)
	case "r":
		s.reset, cmd = s.reset.Update(msg)
	}
	s.check.Disabled = !s.widget.AllAnswered()
	return s, cmd
}

func (s *imageMatchingScreen) choose(step func(string) string) {
	img := s.figures()[s.cursor].ID
	chosen, _ := s.widget.Chosen(img)
	s.widget.Select(img, step(chosen))
}

func (s *imageMatchingScreen) View(width, height int) string {
	cw := components.ContentWidth(width) - 4
	im := s.widget.Question()

	var b strings.Builder
	b.WriteString(s.header(im.Prompt, nil, "", cw))
	b.WriteString(components.NewProgressBar("Etiquetadas", s.widget.Answered(), len(im.Images), cw).View() + "\n\n")

	focus := 0
	for i, img := range im.Images {
		focused := i == s.cursor
		if focused {
			focus = lineOf(&b) + 2
		}
		label := fmt.Sprintf("Figura %d", i+1)
		style := theme.Body
		switch s.widget.Feedback(img.ID) {
		case quiz.Correct:
			style = theme.Correct
		case quiz.Incorrect:
			style = theme.Incorrect
		}
		if focused {
			style = theme.Cursor
		}
		b.WriteString(style.Render(label) + "\n")
		b.WriteString("    " + components.Image("Imagen", s.env.Assets.Resolve(img.Src)) + "\n")

		chosen, _ := s.widget.Chosen(img.ID)
		b.WriteString("    " + s.picker.View(chosen, focused) + "\n")
		if fb := components.InlineFeedback(s.widget.Feedback(img.ID), correctLabel,
			incorrectLabel+" Correcta: "+s.widget.CorrectText(img.ID)); fb != "" {
			b.WriteString("    " + fb + "\n")
		}
	}

	b.WriteString("\n" + s.check.View() + "  " + s.reset.View() + "\n")
	if fb := components.Feedback(s.widget.Summary(), "¡Todas correctas!",
		"Algunas respuestas son incorrectas. Revisa las marcadas en rojo.", cw); fb != "" {
		b.WriteString("\n" + fb)
	}

	return frame(b.String(), focus, width, height)
}

func (s *imageMatchingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Figura"},
		{Key: "←→", Description: "Elegir tipo"},
		{Key: "Enter", Description: checkLabel},
		{Key: "R", Description: resetLabel},
		{Key: "Esc", Description: "Volver"},
	}
}
